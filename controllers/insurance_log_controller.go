package controllers

import (
	"errors"

	"farm-app/controllers/idgen"
	"farm-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type InsuranceLogController struct {
	DB *gorm.DB
}

func NewInsuranceLogController(DB *gorm.DB) *InsuranceLogController {
	return &InsuranceLogController{DB: DB}
}

type insuranceLogInput struct {
	ID           string  `json:"id"`
	VehicleID    string  `json:"vehicleId" validate:"required"`
	LegalPlateNo string  `json:"legalPlateNo"`
	PolicyNo     string  `json:"policyNo" validate:"required"`
	StartDate    string  `json:"startDate" validate:"required"`
	EndDate      string  `json:"endDate" validate:"required"`
	Company      string  `json:"company"`
	Premium      float64 `json:"premium"`
}

func (c *InsuranceLogController) CreateInsuranceLog(ctx *fiber.Ctx) error {

	var input insuranceLogInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	log := models.InsuranceLog{
		ID:           input.ID,
		VehicleID:    input.VehicleID,
		LegalPlateNo: input.LegalPlateNo,
		PolicyNo:     input.PolicyNo,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Company:      input.Company,
		Premium:      input.Premium,
	}
	if log.ID == "" {
		log.ID = idgen.NewRecordID()
	}

	if err := c.DB.Create(&log).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Insurance log created successfully", "data": log})
}

func (c *InsuranceLogController) GetAllInsuranceLogs(ctx *fiber.Ctx) error {
	var logs []models.InsuranceLog
	if err := c.DB.Find(&logs).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Insurance logs found", "data": logs})
}

func (c *InsuranceLogController) UpdateInsuranceLog(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var log models.InsuranceLog
	if err := c.DB.Where("id = ?", id).First(&log).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Insurance log not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input insuranceLogInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	log.VehicleID = input.VehicleID
	log.LegalPlateNo = input.LegalPlateNo
	log.PolicyNo = input.PolicyNo
	log.StartDate = input.StartDate
	log.EndDate = input.EndDate
	log.Company = input.Company
	log.Premium = input.Premium

	if err := c.DB.Save(&log).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Insurance log updated successfully", "data": log})
}

func (c *InsuranceLogController) DeleteInsuranceLog(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	result := c.DB.Where("id = ?", id).Delete(&models.InsuranceLog{})
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": result.Error.Error()})
	}
	if result.RowsAffected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Insurance log not found"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Insurance log deleted successfully"})
}
