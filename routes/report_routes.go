package routes

import (
	"farm-app/config"
	"farm-app/controllers"
	"farm-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupReportRoutes(app *fiber.App, db *gorm.DB) {
	reportController := controllers.NewReportController(db)

	api := app.Group(config.MAIN_ROUTES+"/reports", middleware.AuthMiddleware(db))
	api.Get("/summary", reportController.GetSummary)
	api.Get("/export", reportController.ExportExcel)
}
