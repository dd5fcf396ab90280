package routes

import (
	"farm-app/config"
	"farm-app/controllers"
	"farm-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupCroppingRoutes(app *fiber.App, db *gorm.DB) {
	croppingController := controllers.NewCroppingController(db)

	api := app.Group(config.MAIN_ROUTES+"/cropping", middleware.AuthMiddleware(db))
	api.Get("/", croppingController.GetAllCroppingActivities)
	api.Post("/", middleware.AdminOnly(), croppingController.CreateCroppingActivity)
	api.Put("/:id", middleware.AdminOnly(), croppingController.UpdateCroppingActivity)
	api.Delete("/:id", middleware.AdminOnly(), croppingController.DeleteCroppingActivity)
}
