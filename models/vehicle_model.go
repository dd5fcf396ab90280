package models

// Vehicle status values. Status is entered on the register screen, it is not
// derived from the maintenance or repair logs.
const (
	VehicleStatusActive       = "Active"
	VehicleStatusUnderRepair  = "Under Repair"
	VehicleStatusOutOfService = "Out of Service"
)

var VehicleTypes = []string{"Tractor", "Lorry", "Bike", "Generator", "Other"}

var ProvinceCodes = []string{"WP", "CP", "SP", "NW", "NC", "UVA", "SAB", "NP", "EP"}

// Vehicle is keyed by the farm's internal code, e.g. TR-0001.
type Vehicle struct {
	ID           string `json:"id" gorm:"primaryKey;size:20"`
	LegalPlateNo string `json:"legalPlateNo"`
	ProvinceCode string `json:"provinceCode"`
	Type         string `json:"type"`
	MakeModel    string `json:"makeModel"`
	Year         string `json:"year"`
	EngineNo     string `json:"engineNo"`
	ChassisNo    string `json:"chassisNo"`
	Status       string `json:"status"`
	JoinedDate   string `json:"joinedDate"`
}
