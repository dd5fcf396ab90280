package controllers

import (
	"errors"

	"farm-app/controllers/idgen"
	"farm-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type InventoryController struct {
	DB *gorm.DB
}

func NewInventoryController(DB *gorm.DB) *InventoryController {
	return &InventoryController{DB: DB}
}

type inventoryInput struct {
	ID              string  `json:"id"`
	Name            string  `json:"name" validate:"required"`
	InventoryNumber string  `json:"inventoryNumber"`
	AssetNumber     string  `json:"assetNumber"`
	DateOfPurchase  string  `json:"dateOfPurchase"`
	Value           float64 `json:"value"`
	RevaluationRate float64 `json:"revaluationRate"`
	Category        string  `json:"category"`
	Location        string  `json:"location"`
	Status          string  `json:"status"`
	Custody         string  `json:"custody"`
}

func (c *InventoryController) CreateInventoryItem(ctx *fiber.Ctx) error {

	var input inventoryInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	item := models.InventoryItem{
		ID:              input.ID,
		Name:            input.Name,
		InventoryNumber: input.InventoryNumber,
		AssetNumber:     input.AssetNumber,
		DateOfPurchase:  input.DateOfPurchase,
		Value:           input.Value,
		RevaluationRate: input.RevaluationRate,
		Category:        input.Category,
		Location:        input.Location,
		Status:          input.Status,
		Custody:         input.Custody,
	}
	if item.ID == "" {
		item.ID = idgen.NewRecordID()
	}

	if err := c.DB.Create(&item).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Inventory item created successfully", "data": item})
}

func (c *InventoryController) GetAllInventoryItems(ctx *fiber.Ctx) error {
	var items []models.InventoryItem
	if err := c.DB.Find(&items).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Inventory items found", "data": items})
}

func (c *InventoryController) UpdateInventoryItem(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var item models.InventoryItem
	if err := c.DB.Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Inventory item not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input inventoryInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	item.Name = input.Name
	item.InventoryNumber = input.InventoryNumber
	item.AssetNumber = input.AssetNumber
	item.DateOfPurchase = input.DateOfPurchase
	item.Value = input.Value
	item.RevaluationRate = input.RevaluationRate
	item.Category = input.Category
	item.Location = input.Location
	item.Status = input.Status
	item.Custody = input.Custody

	if err := c.DB.Save(&item).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Inventory item updated successfully", "data": item})
}

func (c *InventoryController) DeleteInventoryItem(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	result := c.DB.Where("id = ?", id).Delete(&models.InventoryItem{})
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": result.Error.Error()})
	}
	if result.RowsAffected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Inventory item not found"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Inventory item deleted successfully"})
}
