package controllers

import (
	"time"

	"farm-app/models"
	"farm-app/repositories"
	"farm-app/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(DB *gorm.DB) *DashboardController {
	return &DashboardController{DB: DB}
}

// GetDashboard assembles the stat cards and charts for the landing page from
// one snapshot fetch. Everything here is derived; nothing is stored.
func (c *DashboardController) GetDashboard(ctx *fiber.Ctx) error {
	repo := repositories.NewSnapshotRepository(c.DB)
	snap, err := repo.FetchAll()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	now := time.Now()

	active, underRepair, outOfService := 0, 0, 0
	for _, v := range snap.Vehicles {
		switch v.Status {
		case models.VehicleStatusActive:
			active++
		case models.VehicleStatusUnderRepair:
			underRepair++
		case models.VehicleStatusOutOfService:
			outOfService++
		}
	}

	balance := services.ComputeStockBalance(snap.StockItems, snap.StockInRecords, snap.StockOutRecords)
	belowReorder := 0
	for _, row := range balance.Rows {
		if row.Status == services.StockStatusPlaceOrder {
			belowReorder++
		}
	}

	alerts := services.ComputeAlerts(snap, now)
	critical, warning := 0, 0
	for _, a := range alerts {
		if a.Severity == services.SeverityCritical {
			critical++
		} else {
			warning++
		}
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Dashboard computed",
		"data": fiber.Map{
			"fleet": fiber.Map{
				"total":         len(snap.Vehicles),
				"active":        active,
				"underRepair":   underRepair,
				"outOfService":  outOfService,
				"totalDistance": services.TotalDistance(snap.DailyVehicleLogs),
			},
			"stock": fiber.Map{
				"items":        len(snap.StockItems),
				"totalValue":   balance.TotalValue,
				"belowReorder": belowReorder,
				"byCategory":   services.StockValueByCategory(snap.StockItems, snap.StockInRecords, snap.StockOutRecords),
			},
			"hr": fiber.Map{
				"employees":     len(snap.Employees),
				"pendingLeaves": countPendingLeaves(snap.LeaveRecords),
			},
			"inventoryItems": len(snap.InventoryItems),
			"fuelTrend":      services.ComputeFuelTrend(snap.FuelLogs, now),
			"alerts": fiber.Map{
				"total":    len(alerts),
				"critical": critical,
				"warning":  warning,
			},
		},
	})
}

func countPendingLeaves(records []models.LeaveRecord) int {
	pending := 0
	for _, r := range records {
		if r.Approved == "Pending" {
			pending++
		}
	}
	return pending
}
