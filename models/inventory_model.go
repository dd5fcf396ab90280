package models

// InventoryItem is a general asset (furniture, machinery, equipment), tracked
// independently of the store consumables in the item master.
type InventoryItem struct {
	ID              string  `json:"id" gorm:"primaryKey;size:32"`
	Name            string  `json:"name"`
	InventoryNumber string  `json:"inventoryNumber"`
	AssetNumber     string  `json:"assetNumber"`
	DateOfPurchase  string  `json:"dateOfPurchase"`
	Value           float64 `json:"value"`
	RevaluationRate float64 `json:"revaluationRate"`
	Category        string  `json:"category"`
	Location        string  `json:"location"`
	Status          string  `json:"status"`
	Custody         string  `json:"custody"`
}
