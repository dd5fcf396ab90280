package controllers

import (
	"errors"

	"farm-app/controllers/idgen"
	"farm-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type StockInController struct {
	DB *gorm.DB
}

func NewStockInController(DB *gorm.DB) *StockInController {
	return &StockInController{DB: DB}
}

type stockInInput struct {
	ID       string  `json:"id"`
	Date     string  `json:"date" validate:"required"`
	ItemCode string  `json:"itemCode" validate:"required"`
	Qty      float64 `json:"qty" validate:"required"`
	Supplier string  `json:"supplier"`
	GrnNo    string  `json:"grnNo"`
}

func (c *StockInController) CreateStockIn(ctx *fiber.Ctx) error {

	var input stockInInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	record := models.StockIn{
		ID:       input.ID,
		Date:     input.Date,
		ItemCode: input.ItemCode,
		Qty:      input.Qty,
		Supplier: input.Supplier,
		GrnNo:    input.GrnNo,
	}
	if record.ID == "" {
		record.ID = idgen.NewRecordID()
	}

	if err := c.DB.Create(&record).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Stock in record created successfully", "data": record})
}

func (c *StockInController) GetAllStockIn(ctx *fiber.Ctx) error {
	var records []models.StockIn
	if err := c.DB.Find(&records).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Stock in records found", "data": records})
}

func (c *StockInController) UpdateStockIn(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var record models.StockIn
	if err := c.DB.Where("id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Stock in record not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input stockInInput
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
	record.Supplier = input.Supplier
	record.GrnNo = input.GrnNo

	if err := c.DB.Save(&record).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Stock in record updated successfully", "data": record})
}

func (c *StockInController) DeleteStockIn(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	result := c.DB.Where("id = ?", id).Delete(&models.StockIn{})
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": result.Error.Error()})
	}
	if result.RowsAffected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Stock in record not found"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Stock in record deleted successfully"})
}
