package services

import (
	"testing"

	"farm-app/models"
)

func TestComputeStockBalanceBasics(t *testing.T) {
	items := []models.StockItem{
		{ItemCode: "A1", ItemName: "Urea", Category: "Fertilizer", Unit: "kg", OpeningStock: 10, ReorderLevel: 5, UnitPrice: 100},
		{ItemCode: "B2", ItemName: "Twine", Category: "Consumable", Unit: "roll", OpeningStock: 4, ReorderLevel: 2, UnitPrice: 50},
	}
	stockIn := []models.StockIn{
		{ID: "in1", ItemCode: "A1", Qty: 5},
		{ID: "in2", ItemCode: "A1", Qty: 3},
	}
	stockOut := []models.StockOut{
		{ID: "out1", ItemCode: "A1", Qty: 15},
	}

	balance := ComputeStockBalance(items, stockIn, stockOut)

	if len(balance.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(balance.Rows))
	}

	a1 := balance.Rows[0]
	if a1.ItemCode != "A1" {
		t.Fatalf("rows must keep item-master order, got %s first", a1.ItemCode)
	}
	if a1.TotalIn != 8 || a1.TotalOut != 15 {
		t.Errorf("A1 totals = in %g out %g, want in 8 out 15", a1.TotalIn, a1.TotalOut)
	}
	if a1.Balance != 3 {
		t.Errorf("A1 balance = %g, want 3", a1.Balance)
	}
	if a1.Status != StockStatusPlaceOrder {
		t.Errorf("A1 status = %q, want %q", a1.Status, StockStatusPlaceOrder)
	}
	if a1.Value != 300 {
		t.Errorf("A1 value = %g, want 300", a1.Value)
	}

	b2 := balance.Rows[1]
	if b2.Balance != 4 {
		t.Errorf("item without transactions must keep opening stock, got %g", b2.Balance)
	}
	if b2.Status != StockStatusOK {
		t.Errorf("B2 status = %q, want %q", b2.Status, StockStatusOK)
	}

	if balance.TotalValue != 300+200 {
		t.Errorf("total value = %g, want 500", balance.TotalValue)
	}
}

func TestComputeStockBalanceReorderBoundary(t *testing.T) {
	items := []models.StockItem{
		{ItemCode: "A1", OpeningStock: 5, ReorderLevel: 5, UnitPrice: 1},
	}

	balance := ComputeStockBalance(items, nil, nil)

	// A balance exactly at the reorder level does not trigger a reorder.
	if balance.Rows[0].Status != StockStatusOK {
		t.Errorf("status at boundary = %q, want %q", balance.Rows[0].Status, StockStatusOK)
	}
}

func TestComputeStockBalanceNegative(t *testing.T) {
	items := []models.StockItem{
		{ItemCode: "A1", OpeningStock: 2, ReorderLevel: 1, UnitPrice: 10},
	}
	stockOut := []models.StockOut{
		{ID: "out1", ItemCode: "A1", Qty: 5},
	}

	balance := ComputeStockBalance(items, nil, stockOut)

	row := balance.Rows[0]
	if row.Balance != -3 {
		t.Errorf("balance = %g, want -3 (negative balances are kept)", row.Balance)
	}
	if row.Status != StockStatusPlaceOrder {
		t.Errorf("status = %q, want %q", row.Status, StockStatusPlaceOrder)
	}
	if row.Value != -30 {
		t.Errorf("value = %g, want -30", row.Value)
	}
}

func TestComputeStockBalanceIgnoresUnknownItemCodes(t *testing.T) {
	items := []models.StockItem{
		{ItemCode: "A1", OpeningStock: 1},
	}
	stockIn := []models.StockIn{
		{ID: "in1", ItemCode: "GHOST", Qty: 100},
	}

	balance := ComputeStockBalance(items, stockIn, nil)

	if len(balance.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(balance.Rows))
	}
	if balance.Rows[0].Balance != 1 {
		t.Errorf("transactions for unknown items must not leak into rows, got %g", balance.Rows[0].Balance)
	}
}
