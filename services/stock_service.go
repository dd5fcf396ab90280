package services

import "farm-app/models"

const (
	StockStatusOK         = "OK"
	StockStatusPlaceOrder = "Place Order"
)

type BalanceRow struct {
	ItemCode     string  `json:"itemCode"`
	ItemName     string  `json:"itemName"`
	Category     string  `json:"category"`
	Unit         string  `json:"unit"`
	UnitPrice    float64 `json:"unitPrice"`
	OpeningStock float64 `json:"openingStock"`
	TotalIn      float64 `json:"totalIn"`
	TotalOut     float64 `json:"totalOut"`
	Balance      float64 `json:"balance"`
	ReorderLevel float64 `json:"reorderLevel"`
	Value        float64 `json:"value"`
	Status       string  `json:"status"`
}

type StockBalance struct {
	Rows       []BalanceRow `json:"rows"`
	TotalValue float64      `json:"totalValue"`
}

// ComputeStockBalance derives the current balance sheet for the store. Every
// item appears exactly once, in item-master order. Negative balances are kept
// as-is so they still compare against the reorder level. Pure: inputs are
// never mutated, recompute on every read.
func ComputeStockBalance(items []models.StockItem, stockIn []models.StockIn, stockOut []models.StockOut) StockBalance {
	inByItem := make(map[string]float64, len(items))
	for _, r := range stockIn {
		inByItem[r.ItemCode] += r.Qty
	}
	outByItem := make(map[string]float64, len(items))
	for _, r := range stockOut {
		outByItem[r.ItemCode] += r.Qty
	}

	rows := make([]BalanceRow, 0, len(items))
	totalValue := 0.0
	for _, item := range items {
		totalIn := inByItem[item.ItemCode]
		totalOut := outByItem[item.ItemCode]
		balance := item.OpeningStock + totalIn - totalOut
		value := item.UnitPrice * balance

		status := StockStatusOK
		if balance < item.ReorderLevel {
			status = StockStatusPlaceOrder
		}

		rows = append(rows, BalanceRow{
			ItemCode:     item.ItemCode,
			ItemName:     item.ItemName,
			Category:     item.Category,
			Unit:         item.Unit,
			UnitPrice:    item.UnitPrice,
			OpeningStock: item.OpeningStock,
			TotalIn:      totalIn,
			TotalOut:     totalOut,
			Balance:      balance,
			ReorderLevel: item.ReorderLevel,
			Value:        value,
			Status:       status,
		})
		totalValue += value
	}

	return StockBalance{Rows: rows, TotalValue: totalValue}
}
