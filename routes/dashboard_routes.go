package routes

import (
	"farm-app/config"
	"farm-app/controllers"
	"farm-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB) {
	dashboardController := controllers.NewDashboardController(db)

	api := app.Group(config.MAIN_ROUTES+"/dashboard", middleware.AuthMiddleware(db))
	api.Get("/", dashboardController.GetDashboard)
}

func SetupAlertRoutes(app *fiber.App, db *gorm.DB) {
	alertController := controllers.NewAlertController(db)

	api := app.Group(config.MAIN_ROUTES+"/alerts", middleware.AuthMiddleware(db))
	api.Get("/", alertController.GetAlerts)
}
