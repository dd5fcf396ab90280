package repositories

import (
	"farm-app/models"

	"gorm.io/gorm"
)

// SnapshotRepository is the single read path for every derived view and for
// backups: it fetches all collections into one in-memory snapshot.
type SnapshotRepository struct {
	DB *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) *SnapshotRepository {
	return &SnapshotRepository{DB: db}
}

// FetchAll loads the full entity store. A failure on any table fails the
// whole fetch; callers surface it and retry, partial snapshots are never
// returned.
func (r *SnapshotRepository) FetchAll() (models.Snapshot, error) {
	snap := models.Snapshot{
		Vehicles:           []models.Vehicle{},
		FuelLogs:           []models.FuelLog{},
		MaintenanceLogs:    []models.MaintenanceLog{},
		RepairLogs:         []models.RepairLog{},
		InsuranceLogs:      []models.InsuranceLog{},
		StockItems:         []models.StockItem{},
		StockInRecords:     []models.StockIn{},
		StockOutRecords:    []models.StockOut{},
		Employees:          []models.Employee{},
		LeaveRecords:       []models.LeaveRecord{},
		OvertimeRecords:    []models.OvertimeRecord{},
		DailyVehicleLogs:   []models.DailyVehicleLog{},
		InventoryItems:     []models.InventoryItem{},
		CroppingActivities: []models.CroppingActivity{},
	}

	steps := []func() error{
		func() error { return r.DB.Find(&snap.Vehicles).Error },
		func() error { return r.DB.Find(&snap.FuelLogs).Error },
		func() error { return r.DB.Find(&snap.MaintenanceLogs).Error },
		func() error { return r.DB.Find(&snap.RepairLogs).Error },
		func() error { return r.DB.Find(&snap.InsuranceLogs).Error },
		func() error { return r.DB.Find(&snap.StockItems).Error },
		func() error { return r.DB.Find(&snap.StockInRecords).Error },
		func() error { return r.DB.Find(&snap.StockOutRecords).Error },
		func() error { return r.DB.Find(&snap.Employees).Error },
		func() error { return r.DB.Find(&snap.LeaveRecords).Error },
		func() error { return r.DB.Find(&snap.OvertimeRecords).Error },
		func() error { return r.DB.Find(&snap.DailyVehicleLogs).Error },
		func() error { return r.DB.Find(&snap.InventoryItems).Error },
		func() error { return r.DB.Find(&snap.CroppingActivities).Error },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return models.Snapshot{}, err
		}
	}

	return snap, nil
}
