package routes

import (
	"farm-app/config"
	"farm-app/controllers"
	"farm-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupStockRoutes(app *fiber.App, db *gorm.DB) {
	stockItemController := controllers.NewStockItemController(db)
	stockInController := controllers.NewStockInController(db)
	stockOutController := controllers.NewStockOutController(db)

	api := app.Group(config.MAIN_ROUTES+"/stock", middleware.AuthMiddleware(db))

	api.Get("/items", stockItemController.GetAllStockItems)
	api.Post("/items", middleware.AdminOnly(), stockItemController.CreateStockItem)
	api.Put("/items/:code", middleware.AdminOnly(), stockItemController.UpdateStockItem)
	api.Delete("/items/:code", middleware.AdminOnly(), stockItemController.DeleteStockItem)

	api.Get("/in", stockInController.GetAllStockIn)
	api.Post("/in", middleware.AdminOnly(), stockInController.CreateStockIn)
	api.Put("/in/:id", middleware.AdminOnly(), stockInController.UpdateStockIn)
	api.Delete("/in/:id", middleware.AdminOnly(), stockInController.DeleteStockIn)

	api.Get("/out", stockOutController.GetAllStockOut)
	api.Post("/out", middleware.AdminOnly(), stockOutController.CreateStockOut)
	api.Put("/out/:id", middleware.AdminOnly(), stockOutController.UpdateStockOut)
	api.Delete("/out/:id", middleware.AdminOnly(), stockOutController.DeleteStockOut)

	api.Get("/balance", stockItemController.GetStockBalance)
}
