package controllers

import (
	"errors"

	"farm-app/controllers/idgen"
	"farm-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CroppingController struct {
	DB *gorm.DB
}

func NewCroppingController(DB *gorm.DB) *CroppingController {
	return &CroppingController{DB: DB}
}

type croppingInput struct {
	ID       string `json:"id"`
	Season   string `json:"season" validate:"required"`
	Month    string `json:"month" validate:"required"`
	Crop     string `json:"crop"`
	Activity string `json:"activity"`
	Notes    string `json:"notes"`
}

func (c *CroppingController) CreateCroppingActivity(ctx *fiber.Ctx) error {

	var input croppingInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if !models.SeasonHasMonth(input.Season, input.Month) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Month does not belong to the selected season"})
	}

	activity := models.CroppingActivity{
		ID:       input.ID,
		Season:   input.Season,
		Month:    input.Month,
		Crop:     input.Crop,
		Activity: input.Activity,
		Notes:    input.Notes,
	}
	if activity.ID == "" {
		activity.ID = idgen.NewRecordID()
	}

	if err := c.DB.Create(&activity).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Cropping activity created successfully", "data": activity})
}

func (c *CroppingController) GetAllCroppingActivities(ctx *fiber.Ctx) error {
	var activities []models.CroppingActivity
	if err := c.DB.Find(&activities).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Cropping activities found", "data": activities})
}

func (c *CroppingController) UpdateCroppingActivity(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var activity models.CroppingActivity
	if err := c.DB.Where("id = ?", id).First(&activity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Cropping activity not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input croppingInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if !models.SeasonHasMonth(input.Season, input.Month) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Month does not belong to the selected season"})
	}

	activity.Season = input.Season
	activity.Month = input.Month
	activity.Crop = input.Crop
	activity.Activity = input.Activity
	activity.Notes = input.Notes

	if err := c.DB.Save(&activity).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Cropping activity updated successfully", "data": activity})
}

func (c *CroppingController) DeleteCroppingActivity(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	result := c.DB.Where("id = ?", id).Delete(&models.CroppingActivity{})
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": result.Error.Error()})
	}
	if result.RowsAffected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Cropping activity not found"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Cropping activity deleted successfully"})
}
