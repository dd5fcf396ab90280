package models

// Snapshot is the complete set of entity collections at a point in time. It is
// both the fetch-all payload and, verbatim, the backup document: restoring a
// re-encoded snapshot must reproduce every record field for field.
type Snapshot struct {
	Vehicles           []Vehicle          `json:"vehicles"`
	FuelLogs           []FuelLog          `json:"fuelLogs"`
	MaintenanceLogs    []MaintenanceLog   `json:"maintenanceLogs"`
	RepairLogs         []RepairLog        `json:"repairLogs"`
	InsuranceLogs      []InsuranceLog     `json:"insuranceLogs"`
	StockItems         []StockItem        `json:"stockItems"`
	StockInRecords     []StockIn          `json:"stockInRecords"`
	StockOutRecords    []StockOut         `json:"stockOutRecords"`
	Employees          []Employee         `json:"employees"`
	LeaveRecords       []LeaveRecord      `json:"leaveRecords"`
	OvertimeRecords    []OvertimeRecord   `json:"overtimeRecords"`
	DailyVehicleLogs   []DailyVehicleLog  `json:"dailyVehicleLogs"`
	InventoryItems     []InventoryItem    `json:"inventoryItems"`
	CroppingActivities []CroppingActivity `json:"croppingActivities"`
}
