package database

import (
	"farm-app/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserSession{},
		&models.LoginLog{},
		&models.Vehicle{},
		&models.FuelLog{},
		&models.MaintenanceLog{},
		&models.RepairLog{},
		&models.InsuranceLog{},
		&models.DailyVehicleLog{},
		&models.StockItem{},
		&models.StockIn{},
		&models.StockOut{},
		&models.Employee{},
		&models.LeaveRecord{},
		&models.OvertimeRecord{},
		&models.InventoryItem{},
		&models.CroppingActivity{},
	)
}
