package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"farm-app/models"
)

const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
)

const (
	AlertOverdueService    = "overdue_service"
	AlertUpcomingService   = "upcoming_service"
	AlertExpiredInsurance  = "expired_insurance"
	AlertExpiringInsurance = "expiring_insurance"
	AlertStockReorder      = "stock_reorder"
	AlertIncrementDue      = "increment_due"
)

const (
	serviceWindowDays   = 14
	insuranceWindowDays = 30
	incrementWindowDays = 30
)

type Alert struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Severity    string `json:"severity"`
	ReferenceID string `json:"referenceId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

const dayLayout = "2006-01-02"

func parseDay(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(dayLayout, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Midnight truncates t to local midnight, the reference point for all alert
// day-window math.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysUntil counts calendar days between two midnights. The interval is taken
// as a ceiling so a DST transition inside the window cannot shave a day off
// and shift the alert boundaries.
func daysUntil(today, due time.Time) int {
	return int(math.Ceil(due.Sub(today).Hours() / 24))
}

func displayDate(s string) string {
	if t, ok := parseDay(s); ok {
		return t.Format("02/01/2006")
	}
	return s
}

func vehicleLabel(vehicles []models.Vehicle, id string) string {
	for _, v := range vehicles {
		if v.ID == id {
			return fmt.Sprintf("%s (%s)", id, v.MakeModel)
		}
	}
	return id
}

// ComputeAlerts derives the unified notification list from the snapshot for a
// given reference day. Pure: no I/O, no caching, safe to call on every read.
// Order: critical before warning, then ascending by reference date; the sort
// is stable, so alerts sharing severity and date keep snapshot order. Stock
// reorder alerts have no natural date and carry the reference day itself.
func ComputeAlerts(snap models.Snapshot, today time.Time) []Alert {
	today = Midnight(today)
	alerts := []Alert{}
	alerts = append(alerts, maintenanceAlerts(snap, today)...)
	alerts = append(alerts, insuranceAlerts(snap, today)...)
	alerts = append(alerts, stockReorderAlerts(snap, today)...)
	alerts = append(alerts, incrementAlerts(snap, today)...)

	sort.SliceStable(alerts, func(i, j int) bool {
		if (alerts[i].Severity == SeverityCritical) != (alerts[j].Severity == SeverityCritical) {
			return alerts[i].Severity == SeverityCritical
		}
		return alerts[i].Date < alerts[j].Date
	})

	return alerts
}

// The governing maintenance record per vehicle is the most recently *logged*
// one among those carrying a next due date, not the one with the soonest due
// date. On equal entry dates the later record wins, matching the last-writer
// semantics of the rest of the system.
func maintenanceAlerts(snap models.Snapshot, today time.Time) []Alert {
	type latest struct {
		entryDate   time.Time
		nextDueDate string
		description string
	}
	byVehicle := map[string]latest{}
	order := []string{}

	for _, l := range snap.MaintenanceLogs {
		if l.NextDueDate == "" {
			continue
		}
		entry, ok := parseDay(l.Date)
		if !ok {
			continue
		}
		existing, seen := byVehicle[l.VehicleID]
		if !seen {
			order = append(order, l.VehicleID)
		}
		if !seen || !entry.Before(existing.entryDate) {
			byVehicle[l.VehicleID] = latest{entryDate: entry, nextDueDate: l.NextDueDate, description: l.Description}
		}
	}

	var alerts []Alert
	for _, vehicleID := range order {
		info := byVehicle[vehicleID]
		due, ok := parseDay(info.nextDueDate)
		if !ok {
			continue
		}
		days := daysUntil(today, due)
		label := vehicleLabel(snap.Vehicles, vehicleID)

		if days < 0 {
			alerts = append(alerts, Alert{
				ID:          "maint-overdue-" + vehicleID,
				Type:        AlertOverdueService,
				Severity:    SeverityCritical,
				ReferenceID: vehicleID,
				Title:       "Service Overdue - " + label,
				Description: fmt.Sprintf("Service was due on %s (%d days ago). Last service: %s", displayDate(info.nextDueDate), -days, info.description),
				Date:        info.nextDueDate,
			})
		} else if days <= serviceWindowDays {
			alerts = append(alerts, Alert{
				ID:          "maint-upcoming-" + vehicleID,
				Type:        AlertUpcomingService,
				Severity:    SeverityWarning,
				ReferenceID: vehicleID,
				Title:       "Service Due Soon - " + label,
				Description: fmt.Sprintf("Next service due on %s (%d days remaining). Last service: %s", displayDate(info.nextDueDate), days, info.description),
				Date:        info.nextDueDate,
			})
		}
	}
	return alerts
}

// The governing policy per vehicle is the one with the latest end date.
func insuranceAlerts(snap models.Snapshot, today time.Time) []Alert {
	type latest struct {
		endDate time.Time
		log     models.InsuranceLog
	}
	byVehicle := map[string]latest{}
	order := []string{}

	for _, l := range snap.InsuranceLogs {
		end, ok := parseDay(l.EndDate)
		if !ok {
			continue
		}
		existing, seen := byVehicle[l.VehicleID]
		if !seen {
			order = append(order, l.VehicleID)
		}
		if !seen || !end.Before(existing.endDate) {
			byVehicle[l.VehicleID] = latest{endDate: end, log: l}
		}
	}

	var alerts []Alert
	for _, vehicleID := range order {
		info := byVehicle[vehicleID]
		days := daysUntil(today, info.endDate)
		label := vehicleLabel(snap.Vehicles, vehicleID)

		if days < 0 {
			alerts = append(alerts, Alert{
				ID:          "ins-expired-" + vehicleID,
				Type:        AlertExpiredInsurance,
				Severity:    SeverityCritical,
				ReferenceID: vehicleID,
				Title:       "Insurance Expired - " + label,
				Description: fmt.Sprintf("Policy %s (%s) expired on %s (%d days ago)", info.log.PolicyNo, info.log.Company, displayDate(info.log.EndDate), -days),
				Date:        info.log.EndDate,
			})
		} else if days <= insuranceWindowDays {
			alerts = append(alerts, Alert{
				ID:          "ins-expiring-" + vehicleID,
				Type:        AlertExpiringInsurance,
				Severity:    SeverityWarning,
				ReferenceID: vehicleID,
				Title:       "Insurance Expiring Soon - " + label,
				Description: fmt.Sprintf("Policy %s (%s) expires on %s (%d days remaining)", info.log.PolicyNo, info.log.Company, displayDate(info.log.EndDate), days),
				Date:        info.log.EndDate,
			})
		}
	}
	return alerts
}

// Reorder alerts are state-based, not time-based: any item whose derived
// balance sits below its reorder level is critical regardless of dates.
func stockReorderAlerts(snap models.Snapshot, today time.Time) []Alert {
	balance := ComputeStockBalance(snap.StockItems, snap.StockInRecords, snap.StockOutRecords)

	var alerts []Alert
	for _, row := range balance.Rows {
		if row.Balance >= row.ReorderLevel {
			continue
		}
		alerts = append(alerts, Alert{
			ID:          "stock-reorder-" + row.ItemCode,
			Type:        AlertStockReorder,
			Severity:    SeverityCritical,
			ReferenceID: row.ItemCode,
			Title:       "Stock Reorder - " + row.ItemName,
			Description: fmt.Sprintf("Balance %g is below the reorder level of %g", row.Balance, row.ReorderLevel),
			Date:        today.Format(dayLayout),
		})
	}
	return alerts
}

// Increment alerts stay at warning severity for the whole window; the display
// layer may emphasise entries closer than a week, classification never
// escalates.
func incrementAlerts(snap models.Snapshot, today time.Time) []Alert {
	var alerts []Alert
	for _, emp := range snap.Employees {
		if emp.IncrementDate == "" {
			continue
		}
		inc, ok := parseDay(emp.IncrementDate)
		if !ok {
			continue
		}
		days := daysUntil(today, inc)
		if days < 0 || days > incrementWindowDays {
			continue
		}
		alerts = append(alerts, Alert{
			ID:          "increment-" + emp.EmpID,
			Type:        AlertIncrementDue,
			Severity:    SeverityWarning,
			ReferenceID: emp.EmpID,
			Title:       "Salary Increment Due - " + emp.Name,
			Description: fmt.Sprintf("Increment for %s due on %s (%d days remaining)", emp.EmpID, displayDate(emp.IncrementDate), days),
			Date:        emp.IncrementDate,
		})
	}
	return alerts
}
