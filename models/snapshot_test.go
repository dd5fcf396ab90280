package models

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	snap := Snapshot{
		Vehicles:           []Vehicle{{ID: "TR-0001", Type: "Tractor", MakeModel: "Massey 240", Status: VehicleStatusActive}},
		FuelLogs:           []FuelLog{{ID: "f1", VehicleID: "TR-0001", Date: "2025-06-01", Quantity: 20, Cost: 5000}},
		MaintenanceLogs:    []MaintenanceLog{{ID: "m1", VehicleID: "TR-0001", Date: "2025-05-20", NextDueDate: "2025-08-20"}},
		RepairLogs:         []RepairLog{},
		InsuranceLogs:      []InsuranceLog{},
		StockItems:         []StockItem{{ItemCode: "A1", ItemName: "Urea", OpeningStock: 10}},
		StockInRecords:     []StockIn{},
		StockOutRecords:    []StockOut{},
		Employees:          []Employee{{EmpID: "EMP-001", Name: "Silva", WagePerDay: 2500}},
		LeaveRecords:       []LeaveRecord{{ID: "l1", EmpID: "EMP-001", FromDate: "2025-06-01", ToDate: "2025-06-02", Days: 2}},
		OvertimeRecords:    []OvertimeRecord{},
		DailyVehicleLogs:   []DailyVehicleLog{{ID: "d1", VehicleID: "TR-0001", KmStart: 10, KmEnd: 30, Distance: 20}},
		InventoryItems:     []InventoryItem{},
		CroppingActivities: []CroppingActivity{{ID: "c1", Season: SeasonMaha, Month: "October"}},
	}

	encoded, err := json.Marshal(snap)
	if err != nil {
		t.Fatal(err)
	}

	var decoded Snapshot
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(snap, decoded) {
		t.Errorf("round trip changed the snapshot:\nbefore %+v\nafter  %+v", snap, decoded)
	}

	// The backup document uses camelCase keys.
	if !strings.Contains(string(encoded), `"stockInRecords"`) {
		t.Errorf("expected camelCase collection keys in %s", encoded)
	}
}

func TestSnapshotStrictDecodeRejectsUnknownFields(t *testing.T) {
	doc := `{"vehicles": [], "bogusCollection": []}`

	decoder := json.NewDecoder(bytes.NewReader([]byte(doc)))
	decoder.DisallowUnknownFields()

	var snap Snapshot
	if err := decoder.Decode(&snap); err == nil {
		t.Fatal("expected strict decode to reject an unknown collection")
	}
}
