package controllers

import (
	"errors"

	"farm-app/controllers/idgen"
	"farm-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type StockOutController struct {
	DB *gorm.DB
}

func NewStockOutController(DB *gorm.DB) *StockOutController {
	return &StockOutController{DB: DB}
}

// issues are not blocked when they would drive the balance negative; the
// balance sheet surfaces the shortfall instead.
type stockOutInput struct {
	ID       string  `json:"id"`
	Date     string  `json:"date" validate:"required"`
	ItemCode string  `json:"itemCode" validate:"required"`
	Qty      float64 `json:"qty" validate:"required"`
	IssuedTo string  `json:"issuedTo"`
	Purpose  string  `json:"purpose"`
}

func (c *StockOutController) CreateStockOut(ctx *fiber.Ctx) error {

	var input stockOutInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	record := models.StockOut{
		ID:       input.ID,
		Date:     input.Date,
		ItemCode: input.ItemCode,
		Qty:      input.Qty,
		IssuedTo: input.IssuedTo,
		Purpose:  input.Purpose,
	}
	if record.ID == "" {
		record.ID = idgen.NewRecordID()
	}

	if err := c.DB.Create(&record).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Stock out record created successfully", "data": record})
}

func (c *StockOutController) GetAllStockOut(ctx *fiber.Ctx) error {
	var records []models.StockOut
	if err := c.DB.Find(&records).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Stock out records found", "data": records})
}

func (c *StockOutController) UpdateStockOut(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var record models.StockOut
	if err := c.DB.Where("id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Stock out record not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input stockOutInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	record.Date = input.Date
	record.ItemCode = input.ItemCode
	record.Qty = input.Qty
	record.IssuedTo = input.IssuedTo
	record.Purpose = input.Purpose

	if err := c.DB.Save(&record).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Stock out record updated successfully", "data": record})
}

func (c *StockOutController) DeleteStockOut(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	result := c.DB.Where("id = ?", id).Delete(&models.StockOut{})
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": result.Error.Error()})
	}
	if result.RowsAffected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Stock out record not found"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Stock out record deleted successfully"})
}
