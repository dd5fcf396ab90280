package controllers

import (
	"time"

	"farm-app/repositories"
	"farm-app/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AlertController struct {
	DB *gorm.DB
}

func NewAlertController(DB *gorm.DB) *AlertController {
	return &AlertController{DB: DB}
}

// GetAlerts recomputes the notification list from the current store on every
// call; nothing is cached or persisted.
func (c *AlertController) GetAlerts(ctx *fiber.Ctx) error {
	repo := repositories.NewSnapshotRepository(c.DB)
	snap, err := repo.FetchAll()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	alerts := services.ComputeAlerts(snap, time.Now())

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Alerts computed", "data": alerts})
}
