package routes

import (
	"farm-app/config"
	"farm-app/controllers"
	"farm-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupVehicleRoutes(app *fiber.App, db *gorm.DB) {
	vehicleController := controllers.NewVehicleController(db)

	api := app.Group(config.MAIN_ROUTES+"/vehicles", middleware.AuthMiddleware(db))
	api.Get("/", vehicleController.GetAllVehicles)
	api.Get("/:id", vehicleController.GetVehicleByID)
	api.Post("/", middleware.AdminOnly(), vehicleController.CreateVehicle)
	api.Put("/:id", middleware.AdminOnly(), vehicleController.UpdateVehicle)
	api.Delete("/:id", middleware.AdminOnly(), vehicleController.DeleteVehicle)
}
