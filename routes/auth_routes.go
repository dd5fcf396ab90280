package routes

import (
	"farm-app/config"
	"farm-app/controllers"
	"farm-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controllers.NewAuthController(db)

	api := app.Group(config.MAIN_ROUTES + "/auth")
	api.Post("/login", authController.Login)

	protected := app.Group(config.MAIN_ROUTES+"/auth", middleware.AuthMiddleware(db))
	protected.Get("/me", authController.Me)
	protected.Get("/logout", authController.Logout)
}
