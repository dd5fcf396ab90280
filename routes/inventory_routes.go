package routes

import (
	"farm-app/config"
	"farm-app/controllers"
	"farm-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupInventoryRoutes(app *fiber.App, db *gorm.DB) {
	inventoryController := controllers.NewInventoryController(db)

	api := app.Group(config.MAIN_ROUTES+"/inventory", middleware.AuthMiddleware(db))
	api.Get("/", inventoryController.GetAllInventoryItems)
	api.Post("/", middleware.AdminOnly(), inventoryController.CreateInventoryItem)
	api.Put("/:id", middleware.AdminOnly(), inventoryController.UpdateInventoryItem)
	api.Delete("/:id", middleware.AdminOnly(), inventoryController.DeleteInventoryItem)
}
