package controllers

import (
	"errors"

	"farm-app/controllers/idgen"
	"farm-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type OvertimeController struct {
	DB *gorm.DB
}

func NewOvertimeController(DB *gorm.DB) *OvertimeController {
	return &OvertimeController{DB: DB}
}

// amount is recomputed from hours and rate on save, never stored as sent.
type overtimeInput struct {
	ID      string  `json:"id"`
	Date    string  `json:"date" validate:"required"`
	EmpID   string  `json:"empId" validate:"required"`
	OtHours float64 `json:"otHours"`
	Rate    float64 `json:"rate"`
}

func (c *OvertimeController) CreateOvertime(ctx *fiber.Ctx) error {

	var input overtimeInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	record := models.OvertimeRecord{
		ID:      input.ID,
		Date:    input.Date,
		EmpID:   input.EmpID,
		OtHours: input.OtHours,
		Rate:    input.Rate,
	}
	if record.ID == "" {
		record.ID = idgen.NewRecordID()
	}

	if err := c.DB.Create(&record).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Overtime record created successfully", "data": record})
}

func (c *OvertimeController) GetAllOvertimes(ctx *fiber.Ctx) error {
	var records []models.OvertimeRecord
	if err := c.DB.Find(&records).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Overtime records found", "data": records})
}

func (c *OvertimeController) UpdateOvertime(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var record models.OvertimeRecord
	if err := c.DB.Where("id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Overtime record not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input overtimeInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	record.Date = input.Date
	record.EmpID = input.EmpID
	record.OtHours = input.OtHours
	record.Rate = input.Rate

	if err := c.DB.Save(&record).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Overtime record updated successfully", "data": record})
}

func (c *OvertimeController) DeleteOvertime(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	result := c.DB.Where("id = ?", id).Delete(&models.OvertimeRecord{})
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": result.Error.Error()})
	}
	if result.RowsAffected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Overtime record not found"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Overtime record deleted successfully"})
}
