package routes

import (
	"farm-app/config"
	"farm-app/controllers"
	"farm-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupBackupRoutes(app *fiber.App, db *gorm.DB) {
	backupController := controllers.NewBackupController(db)

	// The whole backup surface is admin territory, export included.
	api := app.Group(config.MAIN_ROUTES+"/backup", middleware.AuthMiddleware(db), middleware.AdminOnly())
	api.Get("/", backupController.ExportBackup)
	api.Post("/restore", backupController.RestoreBackup)
}
