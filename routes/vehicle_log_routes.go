package routes

import (
	"farm-app/config"
	"farm-app/controllers"
	"farm-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupFuelLogRoutes(app *fiber.App, db *gorm.DB) {
	fuelLogController := controllers.NewFuelLogController(db)

	api := app.Group(config.MAIN_ROUTES+"/fuel-logs", middleware.AuthMiddleware(db))
	api.Get("/", fuelLogController.GetAllFuelLogs)
	api.Post("/", middleware.AdminOnly(), fuelLogController.CreateFuelLog)
	api.Put("/:id", middleware.AdminOnly(), fuelLogController.UpdateFuelLog)
	api.Delete("/:id", middleware.AdminOnly(), fuelLogController.DeleteFuelLog)
}

func SetupMaintenanceLogRoutes(app *fiber.App, db *gorm.DB) {
	maintenanceLogController := controllers.NewMaintenanceLogController(db)

	api := app.Group(config.MAIN_ROUTES+"/maintenance-logs", middleware.AuthMiddleware(db))
	api.Get("/", maintenanceLogController.GetAllMaintenanceLogs)
	api.Post("/", middleware.AdminOnly(), maintenanceLogController.CreateMaintenanceLog)
	api.Put("/:id", middleware.AdminOnly(), maintenanceLogController.UpdateMaintenanceLog)
	api.Delete("/:id", middleware.AdminOnly(), maintenanceLogController.DeleteMaintenanceLog)
}

func SetupRepairLogRoutes(app *fiber.App, db *gorm.DB) {
	repairLogController := controllers.NewRepairLogController(db)

	api := app.Group(config.MAIN_ROUTES+"/repair-logs", middleware.AuthMiddleware(db))
	api.Get("/", repairLogController.GetAllRepairLogs)
	api.Post("/", middleware.AdminOnly(), repairLogController.CreateRepairLog)
	api.Put("/:id", middleware.AdminOnly(), repairLogController.UpdateRepairLog)
	api.Delete("/:id", middleware.AdminOnly(), repairLogController.DeleteRepairLog)
}

func SetupInsuranceLogRoutes(app *fiber.App, db *gorm.DB) {
	insuranceLogController := controllers.NewInsuranceLogController(db)

	api := app.Group(config.MAIN_ROUTES+"/insurance-logs", middleware.AuthMiddleware(db))
	api.Get("/", insuranceLogController.GetAllInsuranceLogs)
	api.Post("/", middleware.AdminOnly(), insuranceLogController.CreateInsuranceLog)
	api.Put("/:id", middleware.AdminOnly(), insuranceLogController.UpdateInsuranceLog)
	api.Delete("/:id", middleware.AdminOnly(), insuranceLogController.DeleteInsuranceLog)
}

func SetupDailyLogRoutes(app *fiber.App, db *gorm.DB) {
	dailyLogController := controllers.NewDailyLogController(db)

	api := app.Group(config.MAIN_ROUTES+"/daily-logs", middleware.AuthMiddleware(db))
	api.Get("/", dailyLogController.GetAllDailyLogs)
	api.Post("/", middleware.AdminOnly(), dailyLogController.CreateDailyLog)
	api.Put("/:id", middleware.AdminOnly(), dailyLogController.UpdateDailyLog)
	api.Delete("/:id", middleware.AdminOnly(), dailyLogController.DeleteDailyLog)
}
