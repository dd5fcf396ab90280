package controllers

import (
	"errors"

	"farm-app/controllers/idgen"
	"farm-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type MaintenanceLogController struct {
	DB *gorm.DB
}

func NewMaintenanceLogController(DB *gorm.DB) *MaintenanceLogController {
	return &MaintenanceLogController{DB: DB}
}

// nextDueDate may stay empty; only logs that carry one take part in the
// service alert evaluation.
type maintenanceLogInput struct {
	ID          string  `json:"id"`
	VehicleID   string  `json:"vehicleId" validate:"required"`
	Date        string  `json:"date" validate:"required"`
	Type        string  `json:"type"`
	Odometer    float64 `json:"odometer"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
	NextDueDate string  `json:"nextDueDate"`
}

func (c *MaintenanceLogController) CreateMaintenanceLog(ctx *fiber.Ctx) error {

	var input maintenanceLogInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	log := models.MaintenanceLog{
		ID:          input.ID,
		VehicleID:   input.VehicleID,
		Date:        input.Date,
		Type:        input.Type,
		Odometer:    input.Odometer,
		Description: input.Description,
		Cost:        input.Cost,
		NextDueDate: input.NextDueDate,
	}
	if log.ID == "" {
		log.ID = idgen.NewRecordID()
	}

	if err := c.DB.Create(&log).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Maintenance log created successfully", "data": log})
}

func (c *MaintenanceLogController) GetAllMaintenanceLogs(ctx *fiber.Ctx) error {
	var logs []models.MaintenanceLog
	if err := c.DB.Find(&logs).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Maintenance logs found", "data": logs})
}

func (c *MaintenanceLogController) UpdateMaintenanceLog(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var log models.MaintenanceLog
	if err := c.DB.Where("id = ?", id).First(&log).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Maintenance log not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input maintenanceLogInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	log.VehicleID = input.VehicleID
	log.Date = input.Date
	log.Type = input.Type
	log.Odometer = input.Odometer
	log.Description = input.Description
	log.Cost = input.Cost
	log.NextDueDate = input.NextDueDate

	if err := c.DB.Save(&log).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Maintenance log updated successfully", "data": log})
}

func (c *MaintenanceLogController) DeleteMaintenanceLog(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	result := c.DB.Where("id = ?", id).Delete(&models.MaintenanceLog{})
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": result.Error.Error()})
	}
	if result.RowsAffected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Maintenance log not found"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Maintenance log deleted successfully"})
}
