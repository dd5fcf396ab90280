package services

import (
	"testing"
	"time"

	"farm-app/models"
)

func TestComputeVehicleCostSummary(t *testing.T) {
	snap := models.Snapshot{
		Vehicles: []models.Vehicle{
			{ID: "TR-0001"},
			{ID: "LR-0002"},
			{ID: "BK-0003"},
		},
		FuelLogs: []models.FuelLog{
			{ID: "f1", VehicleID: "TR-0001", Cost: 100},
			{ID: "f2", VehicleID: "TR-0001", Cost: 50},
		},
		MaintenanceLogs: []models.MaintenanceLog{
			{ID: "m1", VehicleID: "LR-0002", Cost: 300},
		},
		RepairLogs: []models.RepairLog{
			{ID: "r1", VehicleID: "TR-0001", Cost: 25},
		},
		InsuranceLogs: []models.InsuranceLog{
			{ID: "i1", VehicleID: "GHOST-9", Premium: 500},
		},
	}

	summary := ComputeVehicleCostSummary(snap)

	// Three registered vehicles plus the log-only one.
	if len(summary.PerVehicle) != 4 {
		t.Fatalf("expected 4 ranked vehicles, got %d", len(summary.PerVehicle))
	}
	if summary.PerVehicle[0].VehicleID != "GHOST-9" || summary.PerVehicle[0].Total != 500 {
		t.Errorf("top = %s/%g, want GHOST-9/500", summary.PerVehicle[0].VehicleID, summary.PerVehicle[0].Total)
	}
	if summary.PerVehicle[1].VehicleID != "LR-0002" {
		t.Errorf("second = %s, want LR-0002", summary.PerVehicle[1].VehicleID)
	}

	var zero *VehicleCost
	for i := range summary.PerVehicle {
		if summary.PerVehicle[i].VehicleID == "BK-0003" {
			zero = &summary.PerVehicle[i]
		}
	}
	if zero == nil {
		t.Fatal("a vehicle with no logs must still be ranked")
	}
	if zero.Total != 0 {
		t.Errorf("BK-0003 total = %g, want 0", zero.Total)
	}

	tr := summary.PerVehicle[2]
	if tr.VehicleID != "TR-0001" || tr.Fuel != 150 || tr.Repair != 25 || tr.Total != 175 {
		t.Errorf("TR-0001 breakdown = %+v, want fuel 150, repair 25, total 175", tr)
	}

	if summary.Totals.Grand != 975 {
		t.Errorf("grand total = %g, want 975", summary.Totals.Grand)
	}
	if summary.Totals.Fuel != 150 || summary.Totals.Maintenance != 300 || summary.Totals.Repair != 25 || summary.Totals.Insurance != 500 {
		t.Errorf("totals = %+v", summary.Totals)
	}
}

func TestStockValueByCategory(t *testing.T) {
	items := []models.StockItem{
		{ItemCode: "A1", Category: "Fertilizer", OpeningStock: 2, UnitPrice: 100},
		{ItemCode: "B2", Category: "Consumable", OpeningStock: 1, UnitPrice: 50},
		{ItemCode: "C3", Category: "Fertilizer", OpeningStock: 1, UnitPrice: 30},
	}

	buckets := StockValueByCategory(items, nil, nil)

	if len(buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(buckets))
	}
	if buckets[0].Name != "Fertilizer" || buckets[0].Value != 230 {
		t.Errorf("bucket[0] = %+v, want Fertilizer/230", buckets[0])
	}
	if buckets[1].Name != "Consumable" || buckets[1].Value != 50 {
		t.Errorf("bucket[1] = %+v, want Consumable/50", buckets[1])
	}
}

func TestComputeFuelTrend(t *testing.T) {
	today := time.Date(2025, 6, 15, 18, 0, 0, 0, time.Local)
	logs := []models.FuelLog{
		{ID: "f1", Date: "2025-06-15", Cost: 40},
		{ID: "f2", Date: "2025-06-13", Cost: 10},
		{ID: "f3", Date: "2025-06-13", Cost: 5},
		{ID: "f4", Date: "2025-06-01", Cost: 999},
	}

	trend := ComputeFuelTrend(logs, today)

	if len(trend) != 7 {
		t.Fatalf("expected 7 days, got %d", len(trend))
	}
	if trend[0].Date != "2025-06-09" || trend[6].Date != "2025-06-15" {
		t.Errorf("window = %s..%s, want 2025-06-09..2025-06-15", trend[0].Date, trend[6].Date)
	}
	if trend[6].Cost != 40 {
		t.Errorf("today cost = %g, want 40", trend[6].Cost)
	}
	if trend[4].Cost != 15 {
		t.Errorf("2025-06-13 cost = %g, want 15", trend[4].Cost)
	}
	if trend[0].Cost != 0 {
		t.Errorf("day without logs must be zero, got %g", trend[0].Cost)
	}
}

func TestTotalDistance(t *testing.T) {
	logs := []models.DailyVehicleLog{
		{ID: "d1", Distance: 12.5},
		{ID: "d2", Distance: 7.5},
	}
	if got := TotalDistance(logs); got != 20 {
		t.Errorf("TotalDistance = %g, want 20", got)
	}
	if got := TotalDistance(nil); got != 0 {
		t.Errorf("TotalDistance(nil) = %g, want 0", got)
	}
}
