package main

import (
	"log"

	"farm-app/config"
	"farm-app/controllers/idgen"
	"farm-app/database"
	"farm-app/pkg/logger"
	"farm-app/routes"
	"farm-app/scheduler"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {

	config.LoadConfig()

	zapLogger := logger.Must(logger.New())
	defer zapLogger.Sync()

	app := fiber.New()

	db, err := database.OpenDatabaseConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	idgen.Init()
	database.RunSeeders(db)

	config.SetupCORS(app)

	routes.SetupAuthRoutes(app, db)
	routes.SetupVehicleRoutes(app, db)
	routes.SetupFuelLogRoutes(app, db)
	routes.SetupMaintenanceLogRoutes(app, db)
	routes.SetupRepairLogRoutes(app, db)
	routes.SetupInsuranceLogRoutes(app, db)
	routes.SetupDailyLogRoutes(app, db)
	routes.SetupStockRoutes(app, db)
	routes.SetupEmployeeRoutes(app, db)
	routes.SetupLeaveRoutes(app, db)
	routes.SetupOvertimeRoutes(app, db)
	routes.SetupInventoryRoutes(app, db)
	routes.SetupCroppingRoutes(app, db)
	routes.SetupDashboardRoutes(app, db)
	routes.SetupAlertRoutes(app, db)
	routes.SetupReportRoutes(app, db)
	routes.SetupBackupRoutes(app, db)

	digest := scheduler.NewScheduler(db, logger.Named(zapLogger, "scheduler"))
	digest.Start()
	defer digest.Stop()

	zapLogger.Info("server starting", zap.String("port", config.APP_PORT))

	if err := app.Listen(":" + config.APP_PORT); err != nil {
		log.Fatal(err)
	}
}
