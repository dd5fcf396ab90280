package controllers

import (
	"errors"

	"farm-app/controllers/idgen"
	"farm-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DailyLogController struct {
	DB *gorm.DB
}

func NewDailyLogController(DB *gorm.DB) *DailyLogController {
	return &DailyLogController{DB: DB}
}

// distance is not accepted from the client; it is recomputed from the km
// readings on every save.
type dailyLogInput struct {
	ID        string  `json:"id"`
	Date      string  `json:"date" validate:"required"`
	VehicleID string  `json:"vehicleId" validate:"required"`
	Driver    string  `json:"driver"`
	Purpose   string  `json:"purpose"`
	KmStart   float64 `json:"kmStart"`
	KmEnd     float64 `json:"kmEnd"`
	FuelUsed  float64 `json:"fuelUsed"`
	Remarks   string  `json:"remarks"`
}

func (c *DailyLogController) CreateDailyLog(ctx *fiber.Ctx) error {

	var input dailyLogInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	log := models.DailyVehicleLog{
		ID:        input.ID,
		Date:      input.Date,
		VehicleID: input.VehicleID,
		Driver:    input.Driver,
		Purpose:   input.Purpose,
		KmStart:   input.KmStart,
		KmEnd:     input.KmEnd,
		FuelUsed:  input.FuelUsed,
		Remarks:   input.Remarks,
	}
	if log.ID == "" {
		log.ID = idgen.NewRecordID()
	}

	if err := c.DB.Create(&log).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Daily vehicle log created successfully", "data": log})
}

func (c *DailyLogController) GetAllDailyLogs(ctx *fiber.Ctx) error {
	var logs []models.DailyVehicleLog
	if err := c.DB.Find(&logs).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Daily vehicle logs found", "data": logs})
}

func (c *DailyLogController) UpdateDailyLog(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var log models.DailyVehicleLog
	if err := c.DB.Where("id = ?", id).First(&log).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Daily vehicle log not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input dailyLogInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	log.Date = input.Date
	log.VehicleID = input.VehicleID
	log.Driver = input.Driver
	log.Purpose = input.Purpose
	log.KmStart = input.KmStart
	log.KmEnd = input.KmEnd
	log.FuelUsed = input.FuelUsed
	log.Remarks = input.Remarks

	if err := c.DB.Save(&log).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Daily vehicle log updated successfully", "data": log})
}

func (c *DailyLogController) DeleteDailyLog(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	result := c.DB.Where("id = ?", id).Delete(&models.DailyVehicleLog{})
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": result.Error.Error()})
	}
	if result.RowsAffected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Daily vehicle log not found"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Daily vehicle log deleted successfully"})
}
