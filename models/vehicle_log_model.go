package models

import "gorm.io/gorm"

// All dates are stored as YYYY-MM-DD strings, matching the wire and backup
// format. VehicleID is a weak reference: it is never validated against the
// vehicles table, a dangling id simply renders as "not found" downstream.

type FuelLog struct {
	ID           string  `json:"id" gorm:"primaryKey;size:32"`
	VehicleID    string  `json:"vehicleId"`
	LegalPlateNo string  `json:"legalPlateNo"`
	Date         string  `json:"date"`
	Quantity     float64 `json:"quantity"`
	Cost         float64 `json:"cost"`
	Mileage      float64 `json:"mileage"`
	Supplier     string  `json:"supplier"`
}

type MaintenanceLog struct {
	ID          string  `json:"id" gorm:"primaryKey;size:32"`
	VehicleID   string  `json:"vehicleId"`
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	Odometer    float64 `json:"odometer"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
	NextDueDate string  `json:"nextDueDate"`
}

type RepairLog struct {
	ID           string  `json:"id" gorm:"primaryKey;size:32"`
	VehicleID    string  `json:"vehicleId"`
	Date         string  `json:"date"`
	Issue        string  `json:"issue"`
	ActionTaken  string  `json:"actionTaken"`
	PartsUsed    string  `json:"partsUsed"`
	Cost         float64 `json:"cost"`
	DowntimeDays float64 `json:"downtimeDays"`
}

type InsuranceLog struct {
	ID           string  `json:"id" gorm:"primaryKey;size:32"`
	VehicleID    string  `json:"vehicleId"`
	LegalPlateNo string  `json:"legalPlateNo"`
	PolicyNo     string  `json:"policyNo"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	Company      string  `json:"company"`
	Premium      float64 `json:"premium"`
}

type DailyVehicleLog struct {
	ID        string  `json:"id" gorm:"primaryKey;size:32"`
	Date      string  `json:"date"`
	VehicleID string  `json:"vehicleId"`
	Driver    string  `json:"driver"`
	Purpose   string  `json:"purpose"`
	KmStart   float64 `json:"kmStart"`
	KmEnd     float64 `json:"kmEnd"`
	Distance  float64 `json:"distance"`
	FuelUsed  float64 `json:"fuelUsed"`
	Remarks   string  `json:"remarks"`
}

// TripDistance is the stored distance for a daily log, never negative.
func TripDistance(kmStart, kmEnd float64) float64 {
	if kmEnd <= kmStart {
		return 0
	}
	return kmEnd - kmStart
}

// Distance is denormalized, recompute it whenever the record is written so a
// stale value can never survive an edit of kmStart/kmEnd.
func (l *DailyVehicleLog) BeforeSave(tx *gorm.DB) error {
	l.Distance = TripDistance(l.KmStart, l.KmEnd)
	return nil
}
