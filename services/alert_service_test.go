package services

import (
	"strings"
	"testing"
	"time"

	"farm-app/models"
)

var testToday = time.Date(2025, 6, 15, 10, 30, 0, 0, time.Local)

func day(offset int) string {
	return Midnight(testToday).AddDate(0, 0, offset).Format("2006-01-02")
}

func alertsOfType(alerts []Alert, alertType string) []Alert {
	var out []Alert
	for _, a := range alerts {
		if a.Type == alertType {
			out = append(out, a)
		}
	}
	return out
}

func TestMaintenanceAlertWindows(t *testing.T) {
	cases := []struct {
		name     string
		due      string
		wantType string
	}{
		{"due today is upcoming", day(0), AlertUpcomingService},
		{"due in 14 days is upcoming", day(14), AlertUpcomingService},
		{"due in 15 days is silent", day(15), ""},
		{"due yesterday is overdue", day(-1), AlertOverdueService},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			snap := models.Snapshot{
				Vehicles: []models.Vehicle{{ID: "TR-0001", MakeModel: "Massey 240"}},
				MaintenanceLogs: []models.MaintenanceLog{
					{ID: "m1", VehicleID: "TR-0001", Date: day(-30), NextDueDate: tc.due},
				},
			}

			alerts := ComputeAlerts(snap, testToday)

			if tc.wantType == "" {
				if len(alerts) != 0 {
					t.Fatalf("expected no alerts, got %v", alerts)
				}
				return
			}
			if len(alerts) != 1 {
				t.Fatalf("expected 1 alert, got %d", len(alerts))
			}
			if alerts[0].Type != tc.wantType {
				t.Errorf("type = %q, want %q", alerts[0].Type, tc.wantType)
			}
			if alerts[0].ReferenceID != "TR-0001" {
				t.Errorf("referenceId = %q, want TR-0001", alerts[0].ReferenceID)
			}
		})
	}
}

func TestMaintenanceGoverningRecordIsLatestEntry(t *testing.T) {
	// The newest logged record governs, even when an older record has a
	// sooner (overdue) due date.
	snap := models.Snapshot{
		MaintenanceLogs: []models.MaintenanceLog{
			{ID: "old", VehicleID: "TR-0001", Date: day(-60), NextDueDate: day(-5)},
			{ID: "new", VehicleID: "TR-0001", Date: day(-10), NextDueDate: day(10)},
		},
	}

	alerts := ComputeAlerts(snap, testToday)

	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts))
	}
	if alerts[0].Type != AlertUpcomingService {
		t.Errorf("type = %q, want %q (newest entry governs)", alerts[0].Type, AlertUpcomingService)
	}
}

func TestMaintenanceLogsWithoutDueDateIgnored(t *testing.T) {
	snap := models.Snapshot{
		MaintenanceLogs: []models.MaintenanceLog{
			{ID: "new", VehicleID: "TR-0001", Date: day(-1), NextDueDate: ""},
			{ID: "old", VehicleID: "TR-0001", Date: day(-20), NextDueDate: day(3)},
		},
	}

	alerts := ComputeAlerts(snap, testToday)

	if len(alerts) != 1 || alerts[0].Type != AlertUpcomingService {
		t.Fatalf("a log without a due date must not shadow an older one that has one: %v", alerts)
	}
}

func TestInsuranceAlertWindows(t *testing.T) {
	cases := []struct {
		name     string
		end      string
		wantType string
	}{
		{"expires in 30 days is expiring", day(30), AlertExpiringInsurance},
		{"expires in 31 days is silent", day(31), ""},
		{"expired yesterday is critical", day(-1), AlertExpiredInsurance},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			snap := models.Snapshot{
				InsuranceLogs: []models.InsuranceLog{
					{ID: "i1", VehicleID: "LR-0002", PolicyNo: "POL-9", EndDate: tc.end},
				},
			}

			alerts := ComputeAlerts(snap, testToday)

			if tc.wantType == "" {
				if len(alerts) != 0 {
					t.Fatalf("expected no alerts, got %v", alerts)
				}
				return
			}
			if len(alerts) != 1 || alerts[0].Type != tc.wantType {
				t.Fatalf("alerts = %v, want one %q", alerts, tc.wantType)
			}
		})
	}
}

func TestInsuranceGoverningPolicyIsLatestEndDate(t *testing.T) {
	// A renewed policy suppresses the expired one.
	snap := models.Snapshot{
		InsuranceLogs: []models.InsuranceLog{
			{ID: "expired", VehicleID: "LR-0002", EndDate: day(-10)},
			{ID: "renewed", VehicleID: "LR-0002", EndDate: day(200)},
		},
	}

	alerts := ComputeAlerts(snap, testToday)

	if len(alerts) != 0 {
		t.Fatalf("renewed policy must suppress the expired one, got %v", alerts)
	}
}

func TestStockReorderAlert(t *testing.T) {
	snap := models.Snapshot{
		StockItems: []models.StockItem{
			{ItemCode: "A1", ItemName: "Urea", OpeningStock: 2, ReorderLevel: 5},
		},
	}

	alerts := ComputeAlerts(snap, testToday)

	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts))
	}
	a := alerts[0]
	if a.Type != AlertStockReorder || a.Severity != SeverityCritical {
		t.Errorf("got %q/%q, want %q/%q", a.Type, a.Severity, AlertStockReorder, SeverityCritical)
	}
	if a.Date != day(0) {
		t.Errorf("reorder alert date = %q, want the reference day %q", a.Date, day(0))
	}
}

func TestIncrementAlertWindow(t *testing.T) {
	cases := []struct {
		name string
		date string
		want int
	}{
		{"today", day(0), 1},
		{"in 30 days", day(30), 1},
		{"in 31 days", day(31), 0},
		{"yesterday", day(-1), 0},
		{"empty", "", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			snap := models.Snapshot{
				Employees: []models.Employee{
					{EmpID: "EMP-001", Name: "Silva", IncrementDate: tc.date},
				},
			}

			alerts := ComputeAlerts(snap, testToday)

			if len(alerts) != tc.want {
				t.Fatalf("alerts = %v, want %d", alerts, tc.want)
			}
			if tc.want == 1 && alerts[0].Severity != SeverityWarning {
				t.Errorf("increment alerts never escalate, got %q", alerts[0].Severity)
			}
		})
	}
}

func TestAlertOrdering(t *testing.T) {
	snap := models.Snapshot{
		MaintenanceLogs: []models.MaintenanceLog{
			{ID: "m1", VehicleID: "TR-0001", Date: day(-30), NextDueDate: day(5)},
		},
		InsuranceLogs: []models.InsuranceLog{
			{ID: "i1", VehicleID: "LR-0002", EndDate: day(-3)},
		},
		Employees: []models.Employee{
			{EmpID: "EMP-001", IncrementDate: day(2)},
		},
		StockItems: []models.StockItem{
			{ItemCode: "A1", OpeningStock: 0, ReorderLevel: 1},
		},
	}

	alerts := ComputeAlerts(snap, testToday)

	if len(alerts) != 4 {
		t.Fatalf("expected 4 alerts, got %d", len(alerts))
	}
	// Critical first (insurance expired day -3, then reorder at day 0),
	// warnings after, each group ascending by date.
	wantTypes := []string{AlertExpiredInsurance, AlertStockReorder, AlertIncrementDue, AlertUpcomingService}
	for i, want := range wantTypes {
		if alerts[i].Type != want {
			t.Errorf("alerts[%d].Type = %q, want %q", i, alerts[i].Type, want)
		}
	}
}

func TestServiceWindowBoundariesAcrossDSTChange(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tz database unavailable: %v", err)
	}
	orig := time.Local
	time.Local = loc
	defer func() { time.Local = orig }()

	// The 2025 spring-forward falls on March 9, inside every window below, so
	// the interval between midnights is an hour short of a whole day count.
	today := time.Date(2025, 3, 8, 9, 0, 0, 0, loc)

	snap := models.Snapshot{
		MaintenanceLogs: []models.MaintenanceLog{
			{ID: "m1", VehicleID: "TR-0001", Date: "2025-03-01", NextDueDate: "2025-03-23"},
		},
	}
	if alerts := ComputeAlerts(snap, today); len(alerts) != 0 {
		t.Fatalf("15 calendar days out must stay silent, got %v", alerts)
	}

	snap.MaintenanceLogs[0].NextDueDate = "2025-03-22"
	alerts := ComputeAlerts(snap, today)
	if len(alerts) != 1 || alerts[0].Type != AlertUpcomingService {
		t.Fatalf("14 calendar days out must be upcoming, got %v", alerts)
	}
	if !strings.Contains(alerts[0].Description, "(14 days remaining)") {
		t.Errorf("description = %q, want a 14-day countdown", alerts[0].Description)
	}

	snap = models.Snapshot{
		InsuranceLogs: []models.InsuranceLog{
			{ID: "i1", VehicleID: "LR-0002", EndDate: "2025-04-08"},
		},
	}
	alerts = ComputeAlerts(snap, today)
	if len(alerts) != 0 {
		t.Fatalf("31 calendar days out must stay silent, got %v", alerts)
	}
}

func TestComputeAlertsEmptySnapshot(t *testing.T) {
	alerts := ComputeAlerts(models.Snapshot{}, testToday)
	if alerts == nil || len(alerts) != 0 {
		t.Fatalf("empty snapshot must yield an empty, non-nil list, got %#v", alerts)
	}
}
