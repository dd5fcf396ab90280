package controllers

import (
	"errors"

	"farm-app/controllers/idgen"
	"farm-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type FuelLogController struct {
	DB *gorm.DB
}

func NewFuelLogController(DB *gorm.DB) *FuelLogController {
	return &FuelLogController{DB: DB}
}

type fuelLogInput struct {
	ID           string  `json:"id"`
	VehicleID    string  `json:"vehicleId" validate:"required"`
	LegalPlateNo string  `json:"legalPlateNo"`
	Date         string  `json:"date" validate:"required"`
	Quantity     float64 `json:"quantity"`
	Cost         float64 `json:"cost"`
	Mileage      float64 `json:"mileage"`
	Supplier     string  `json:"supplier"`
}

func (c *FuelLogController) CreateFuelLog(ctx *fiber.Ctx) error {

	var input fuelLogInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	log := models.FuelLog{
		ID:           input.ID,
		VehicleID:    input.VehicleID,
		LegalPlateNo: input.LegalPlateNo,
		Date:         input.Date,
		Quantity:     input.Quantity,
		Cost:         input.Cost,
		Mileage:      input.Mileage,
		Supplier:     input.Supplier,
	}
	if log.ID == "" {
		log.ID = idgen.NewRecordID()
	}

	if err := c.DB.Create(&log).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Fuel log created successfully", "data": log})
}

func (c *FuelLogController) GetAllFuelLogs(ctx *fiber.Ctx) error {
	var logs []models.FuelLog
	if err := c.DB.Find(&logs).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Fuel logs found", "data": logs})
}

func (c *FuelLogController) UpdateFuelLog(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var log models.FuelLog
	if err := c.DB.Where("id = ?", id).First(&log).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Fuel log not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input fuelLogInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	log.VehicleID = input.VehicleID
	log.LegalPlateNo = input.LegalPlateNo
	log.Date = input.Date
	log.Quantity = input.Quantity
	log.Cost = input.Cost
	log.Mileage = input.Mileage
	log.Supplier = input.Supplier

	if err := c.DB.Save(&log).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Fuel log updated successfully", "data": log})
}

func (c *FuelLogController) DeleteFuelLog(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	result := c.DB.Where("id = ?", id).Delete(&models.FuelLog{})
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": result.Error.Error()})
	}
	if result.RowsAffected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Fuel log not found"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Fuel log deleted successfully"})
}
