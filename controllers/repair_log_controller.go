package controllers

import (
	"errors"

	"farm-app/controllers/idgen"
	"farm-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type RepairLogController struct {
	DB *gorm.DB
}

func NewRepairLogController(DB *gorm.DB) *RepairLogController {
	return &RepairLogController{DB: DB}
}

type repairLogInput struct {
	ID           string  `json:"id"`
	VehicleID    string  `json:"vehicleId" validate:"required"`
	Date         string  `json:"date" validate:"required"`
	Issue        string  `json:"issue" validate:"required"`
	ActionTaken  string  `json:"actionTaken"`
	PartsUsed    string  `json:"partsUsed"`
	Cost         float64 `json:"cost"`
	DowntimeDays float64 `json:"downtimeDays"`
}

func (c *RepairLogController) CreateRepairLog(ctx *fiber.Ctx) error {

	var input repairLogInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	log := models.RepairLog{
		ID:           input.ID,
		VehicleID:    input.VehicleID,
		Date:         input.Date,
		Issue:        input.Issue,
		ActionTaken:  input.ActionTaken,
		PartsUsed:    input.PartsUsed,
		Cost:         input.Cost,
		DowntimeDays: input.DowntimeDays,
	}
	if log.ID == "" {
		log.ID = idgen.NewRecordID()
	}

	if err := c.DB.Create(&log).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Repair log created successfully", "data": log})
}

func (c *RepairLogController) GetAllRepairLogs(ctx *fiber.Ctx) error {
	var logs []models.RepairLog
	if err := c.DB.Find(&logs).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Repair logs found", "data": logs})
}

func (c *RepairLogController) UpdateRepairLog(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var log models.RepairLog
	if err := c.DB.Where("id = ?", id).First(&log).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Repair log not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input repairLogInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	log.VehicleID = input.VehicleID
	log.Date = input.Date
	log.Issue = input.Issue
	log.ActionTaken = input.ActionTaken
	log.PartsUsed = input.PartsUsed
	log.Cost = input.Cost
	log.DowntimeDays = input.DowntimeDays

	if err := c.DB.Save(&log).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Repair log updated successfully", "data": log})
}

func (c *RepairLogController) DeleteRepairLog(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	result := c.DB.Where("id = ?", id).Delete(&models.RepairLog{})
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": result.Error.Error()})
	}
	if result.RowsAffected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Repair log not found"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Repair log deleted successfully"})
}
