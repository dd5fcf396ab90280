package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"farm-app/models"
	"farm-app/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type BackupController struct {
	DB *gorm.DB
}

func NewBackupController(DB *gorm.DB) *BackupController {
	return &BackupController{DB: DB}
}

// ExportBackup streams the full entity store as a JSON document. The document
// is the snapshot itself; restoring it reproduces every record field for
// field.
func (c *BackupController) ExportBackup(ctx *fiber.Ctx) error {
	repo := repositories.NewSnapshotRepository(c.DB)
	snap, err := repo.FetchAll()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	filename := fmt.Sprintf("farm-backup-%s.json", time.Now().Format("2006-01-02"))
	ctx.Set("Content-Type", "application/json")
	ctx.Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	return ctx.Status(fiber.StatusOK).JSON(snap)
}

// RestoreBackup replaces the whole store with the uploaded snapshot. The
// document is parsed strictly before any table is touched, so a malformed
// upload never destroys data. The replacement itself runs table by table
// without a surrounding transaction, matching the export granularity; a
// mid-restore failure leaves earlier tables already replaced.
func (c *BackupController) RestoreBackup(ctx *fiber.Ctx) error {
	var snap models.Snapshot
	decoder := json.NewDecoder(bytes.NewReader(ctx.Body()))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&snap); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Malformed backup document: " + err.Error()})
	}

	// Hooks are skipped so restored records keep their stored derived fields
	// byte for byte.
	db := c.DB.Session(&gorm.Session{SkipHooks: true, AllowGlobalUpdate: true})

	steps := []struct {
		model  interface{}
		insert func() error
	}{
		{&models.Vehicle{}, func() error { return insertAll(db, snap.Vehicles) }},
		{&models.FuelLog{}, func() error { return insertAll(db, snap.FuelLogs) }},
		{&models.MaintenanceLog{}, func() error { return insertAll(db, snap.MaintenanceLogs) }},
		{&models.RepairLog{}, func() error { return insertAll(db, snap.RepairLogs) }},
		{&models.InsuranceLog{}, func() error { return insertAll(db, snap.InsuranceLogs) }},
		{&models.StockItem{}, func() error { return insertAll(db, snap.StockItems) }},
		{&models.StockIn{}, func() error { return insertAll(db, snap.StockInRecords) }},
		{&models.StockOut{}, func() error { return insertAll(db, snap.StockOutRecords) }},
		{&models.Employee{}, func() error { return insertAll(db, snap.Employees) }},
		{&models.LeaveRecord{}, func() error { return insertAll(db, snap.LeaveRecords) }},
		{&models.OvertimeRecord{}, func() error { return insertAll(db, snap.OvertimeRecords) }},
		{&models.DailyVehicleLog{}, func() error { return insertAll(db, snap.DailyVehicleLogs) }},
		{&models.InventoryItem{}, func() error { return insertAll(db, snap.InventoryItems) }},
		{&models.CroppingActivity{}, func() error { return insertAll(db, snap.CroppingActivities) }},
	}

	for _, step := range steps {
		if err := db.Delete(step.model).Error; err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		if err := step.insert(); err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Backup restored successfully"})
}

func insertAll[T any](db *gorm.DB, records []T) error {
	if len(records) == 0 {
		return nil
	}
	return db.CreateInBatches(records, 200).Error
}
