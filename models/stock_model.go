package models

// StockItem is the item master for store consumables. The balance is never
// stored, it is always recomputed from opening stock and the in/out logs.
type StockItem struct {
	ItemCode     string  `json:"itemCode" gorm:"primaryKey;size:32"`
	ItemName     string  `json:"itemName"`
	Category     string  `json:"category"`
	Unit         string  `json:"unit"`
	ReorderLevel float64 `json:"reorderLevel"`
	UnitPrice    float64 `json:"unitPrice"`
	OpeningStock float64 `json:"openingStock"`
}

func (StockItem) TableName() string {
	return "item_master"
}

type StockIn struct {
	ID       string  `json:"id" gorm:"primaryKey;size:32"`
	Date     string  `json:"date"`
	ItemCode string  `json:"itemCode"`
	Qty      float64 `json:"qty"`
	Supplier string  `json:"supplier"`
	GrnNo    string  `json:"grnNo"`
}

func (StockIn) TableName() string {
	return "stock_in"
}

type StockOut struct {
	ID       string  `json:"id" gorm:"primaryKey;size:32"`
	Date     string  `json:"date"`
	ItemCode string  `json:"itemCode"`
	Qty      float64 `json:"qty"`
	IssuedTo string  `json:"issuedTo"`
	Purpose  string  `json:"purpose"`
}

func (StockOut) TableName() string {
	return "stock_out"
}
