package services

import (
	"sort"
	"time"

	"farm-app/models"
)

type VehicleCost struct {
	VehicleID   string  `json:"id"`
	Fuel        float64 `json:"fuel"`
	Maintenance float64 `json:"maintenance"`
	Repair      float64 `json:"repair"`
	Insurance   float64 `json:"insurance"`
	Total       float64 `json:"cost"`
}

type CategoryValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type CostTotals struct {
	Fuel        float64 `json:"fuel"`
	Maintenance float64 `json:"maintenance"`
	Repair      float64 `json:"repair"`
	Insurance   float64 `json:"insurance"`
	Grand       float64 `json:"grand"`
}

type CostSummary struct {
	PerVehicle []VehicleCost   `json:"perVehicle"`
	ByCategory []CategoryValue `json:"byCategory"`
	Totals     CostTotals      `json:"totals"`
}

type DailyCost struct {
	Date string  `json:"date"`
	Cost float64 `json:"cost"`
}

// ComputeVehicleCostSummary sums the four expense logs per vehicle and in
// total, and buckets current stock value by category. Every vehicle in the
// snapshot is ranked even with zero logged cost, plus any vehicle id that
// appears only in logs. Ranking is descending by total with stable ties.
func ComputeVehicleCostSummary(snap models.Snapshot) CostSummary {
	index := make(map[string]int, len(snap.Vehicles))
	perVehicle := make([]VehicleCost, 0, len(snap.Vehicles))

	at := func(vehicleID string) *VehicleCost {
		i, ok := index[vehicleID]
		if !ok {
			i = len(perVehicle)
			index[vehicleID] = i
			perVehicle = append(perVehicle, VehicleCost{VehicleID: vehicleID})
		}
		return &perVehicle[i]
	}

	for _, v := range snap.Vehicles {
		at(v.ID)
	}
	for _, l := range snap.FuelLogs {
		at(l.VehicleID).Fuel += l.Cost
	}
	for _, l := range snap.MaintenanceLogs {
		at(l.VehicleID).Maintenance += l.Cost
	}
	for _, l := range snap.RepairLogs {
		at(l.VehicleID).Repair += l.Cost
	}
	for _, l := range snap.InsuranceLogs {
		at(l.VehicleID).Insurance += l.Premium
	}

	totals := CostTotals{}
	for i := range perVehicle {
		c := &perVehicle[i]
		c.Total = c.Fuel + c.Maintenance + c.Repair + c.Insurance
		totals.Fuel += c.Fuel
		totals.Maintenance += c.Maintenance
		totals.Repair += c.Repair
		totals.Insurance += c.Insurance
	}
	totals.Grand = totals.Fuel + totals.Maintenance + totals.Repair + totals.Insurance

	sort.SliceStable(perVehicle, func(i, j int) bool {
		return perVehicle[i].Total > perVehicle[j].Total
	})

	return CostSummary{
		PerVehicle: perVehicle,
		ByCategory: StockValueByCategory(snap.StockItems, snap.StockInRecords, snap.StockOutRecords),
		Totals:     totals,
	}
}

// StockValueByCategory buckets the derived stock value per item category,
// categories appearing in item-master order.
func StockValueByCategory(items []models.StockItem, stockIn []models.StockIn, stockOut []models.StockOut) []CategoryValue {
	balance := ComputeStockBalance(items, stockIn, stockOut)

	index := map[string]int{}
	buckets := []CategoryValue{}
	for _, row := range balance.Rows {
		i, ok := index[row.Category]
		if !ok {
			i = len(buckets)
			index[row.Category] = i
			buckets = append(buckets, CategoryValue{Name: row.Category})
		}
		buckets[i].Value += row.Value
	}
	return buckets
}

// ComputeFuelTrend returns the daily fuel spend for the seven calendar days
// ending today, inclusive. Days without logs appear with zero cost.
func ComputeFuelTrend(fuelLogs []models.FuelLog, today time.Time) []DailyCost {
	today = Midnight(today)

	costByDate := map[string]float64{}
	for _, l := range fuelLogs {
		costByDate[l.Date] += l.Cost
	}

	trend := make([]DailyCost, 0, 7)
	for i := 6; i >= 0; i-- {
		date := today.AddDate(0, 0, -i).Format(dayLayout)
		trend = append(trend, DailyCost{Date: date, Cost: costByDate[date]})
	}
	return trend
}

// TotalDistance sums the stored trip distances across the daily vehicle logs.
func TotalDistance(logs []models.DailyVehicleLog) float64 {
	total := 0.0
	for _, l := range logs {
		total += l.Distance
	}
	return total
}
