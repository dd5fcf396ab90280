package controllers

import (
	"errors"

	"farm-app/controllers/idgen"
	"farm-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type LeaveController struct {
	DB *gorm.DB
}

func NewLeaveController(DB *gorm.DB) *LeaveController {
	return &LeaveController{DB: DB}
}

// days is never taken from the client; the model recomputes it from the
// date range on save.
type leaveInput struct {
	ID        string `json:"id"`
	EmpID     string `json:"empId" validate:"required"`
	LeaveType string `json:"leaveType"`
	FromDate  string `json:"fromDate" validate:"required"`
	ToDate    string `json:"toDate" validate:"required"`
	Approved  string `json:"approved"`
}

func validApprovalStatus(status string) bool {
	if status == "" {
		return true
	}
	for _, s := range models.LeaveApprovalStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func (c *LeaveController) CreateLeave(ctx *fiber.Ctx) error {

	var input leaveInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if !validApprovalStatus(input.Approved) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid approval status"})
	}

	record := models.LeaveRecord{
		ID:        input.ID,
		EmpID:     input.EmpID,
		LeaveType: input.LeaveType,
		FromDate:  input.FromDate,
		ToDate:    input.ToDate,
		Approved:  input.Approved,
	}
	if record.ID == "" {
		record.ID = idgen.NewRecordID()
	}
	if record.Approved == "" {
		record.Approved = "Pending"
	}

	if err := c.DB.Create(&record).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Leave record created successfully", "data": record})
}

func (c *LeaveController) GetAllLeaves(ctx *fiber.Ctx) error {
	var records []models.LeaveRecord
	if err := c.DB.Find(&records).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Leave records found", "data": records})
}

func (c *LeaveController) UpdateLeave(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var record models.LeaveRecord
	if err := c.DB.Where("id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Leave record not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input leaveInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if !validApprovalStatus(input.Approved) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid approval status"})
	}

	record.EmpID = input.EmpID
	record.LeaveType = input.LeaveType
	record.FromDate = input.FromDate
	record.ToDate = input.ToDate
	if input.Approved != "" {
		record.Approved = input.Approved
	}

	if err := c.DB.Save(&record).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Leave record updated successfully", "data": record})
}

func (c *LeaveController) DeleteLeave(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	result := c.DB.Where("id = ?", id).Delete(&models.LeaveRecord{})
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": result.Error.Error()})
	}
	if result.RowsAffected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Leave record not found"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Leave record deleted successfully"})
}
