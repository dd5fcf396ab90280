package routes

import (
	"farm-app/config"
	"farm-app/controllers"
	"farm-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupEmployeeRoutes(app *fiber.App, db *gorm.DB) {
	employeeController := controllers.NewEmployeeController(db)

	api := app.Group(config.MAIN_ROUTES+"/employees", middleware.AuthMiddleware(db))
	api.Get("/", employeeController.GetAllEmployees)
	api.Get("/:id", employeeController.GetEmployeeByID)
	api.Post("/", middleware.AdminOnly(), employeeController.CreateEmployee)
	api.Put("/:id", middleware.AdminOnly(), employeeController.UpdateEmployee)
	api.Delete("/:id", middleware.AdminOnly(), employeeController.DeleteEmployee)
}

func SetupLeaveRoutes(app *fiber.App, db *gorm.DB) {
	leaveController := controllers.NewLeaveController(db)

	api := app.Group(config.MAIN_ROUTES+"/leaves", middleware.AuthMiddleware(db))
	api.Get("/", leaveController.GetAllLeaves)
	api.Post("/", middleware.AdminOnly(), leaveController.CreateLeave)
	api.Put("/:id", middleware.AdminOnly(), leaveController.UpdateLeave)
	api.Delete("/:id", middleware.AdminOnly(), leaveController.DeleteLeave)
}

func SetupOvertimeRoutes(app *fiber.App, db *gorm.DB) {
	overtimeController := controllers.NewOvertimeController(db)

	api := app.Group(config.MAIN_ROUTES+"/overtimes", middleware.AuthMiddleware(db))
	api.Get("/", overtimeController.GetAllOvertimes)
	api.Post("/", middleware.AdminOnly(), overtimeController.CreateOvertime)
	api.Put("/:id", middleware.AdminOnly(), overtimeController.UpdateOvertime)
	api.Delete("/:id", middleware.AdminOnly(), overtimeController.DeleteOvertime)
}
