package controllers

import (
	"errors"

	"farm-app/models"
	"farm-app/services"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type StockItemController struct {
	DB *gorm.DB
}

func NewStockItemController(DB *gorm.DB) *StockItemController {
	return &StockItemController{DB: DB}
}

type stockItemInput struct {
	ItemCode     string  `json:"itemCode" validate:"required"`
	ItemName     string  `json:"itemName" validate:"required"`
	Category     string  `json:"category"`
	Unit         string  `json:"unit"`
	ReorderLevel float64 `json:"reorderLevel"`
	UnitPrice    float64 `json:"unitPrice"`
	OpeningStock float64 `json:"openingStock"`
}

func (c *StockItemController) CreateStockItem(ctx *fiber.Ctx) error {

	var input stockItemInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var existing models.StockItem
	if err := c.DB.Where("item_code = ?", input.ItemCode).First(&existing).Error; err == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Item code already exists"})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	item := models.StockItem{
		ItemCode:     input.ItemCode,
		ItemName:     input.ItemName,
		Category:     input.Category,
		Unit:         input.Unit,
		ReorderLevel: input.ReorderLevel,
		UnitPrice:    input.UnitPrice,
		OpeningStock: input.OpeningStock,
	}

	if err := c.DB.Create(&item).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Stock item created successfully", "data": item})
}

func (c *StockItemController) GetAllStockItems(ctx *fiber.Ctx) error {
	var items []models.StockItem
	if err := c.DB.Find(&items).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Stock items found", "data": items})
}

func (c *StockItemController) UpdateStockItem(ctx *fiber.Ctx) error {
	code := ctx.Params("code")

	var item models.StockItem
	if err := c.DB.Where("item_code = ?", code).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Stock item not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input stockItemInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	item.ItemName = input.ItemName
	item.Category = input.Category
	item.Unit = input.Unit
	item.ReorderLevel = input.ReorderLevel
	item.UnitPrice = input.UnitPrice
	item.OpeningStock = input.OpeningStock

	if err := c.DB.Save(&item).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Stock item updated successfully", "data": item})
}

func (c *StockItemController) DeleteStockItem(ctx *fiber.Ctx) error {
	code := ctx.Params("code")

	result := c.DB.Where("item_code = ?", code).Delete(&models.StockItem{})
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": result.Error.Error()})
	}
	if result.RowsAffected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Stock item not found"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Stock item deleted successfully"})
}

// GetStockBalance recomputes the per-item balance sheet from the item master
// and the full in/out history.
func (c *StockItemController) GetStockBalance(ctx *fiber.Ctx) error {
	var items []models.StockItem
	if err := c.DB.Find(&items).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var stockIn []models.StockIn
	if err := c.DB.Find(&stockIn).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var stockOut []models.StockOut
	if err := c.DB.Find(&stockOut).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	balance := services.ComputeStockBalance(items, stockIn, stockOut)

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Stock balance computed", "data": balance})
}
