package controllers

import (
	"fmt"
	"time"

	"farm-app/repositories"
	"farm-app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(DB *gorm.DB) *ReportController {
	return &ReportController{DB: DB}
}

// GetSummary returns the cost report: per-vehicle ranking with per-type
// breakdown, category totals and the seven-day fuel trend.
func (c *ReportController) GetSummary(ctx *fiber.Ctx) error {
	repo := repositories.NewSnapshotRepository(c.DB)
	snap, err := repo.FetchAll()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	summary := services.ComputeVehicleCostSummary(snap)

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Report summary computed", "data": fiber.Map{
		"costs":         summary,
		"fuelTrend":     services.ComputeFuelTrend(snap.FuelLogs, time.Now()),
		"totalDistance": services.TotalDistance(snap.DailyVehicleLogs),
	}})
}

// ExportExcel writes the stock balance sheet and the vehicle expense ranking
// into one workbook and streams it as a download.
func (c *ReportController) ExportExcel(ctx *fiber.Ctx) error {
	repo := repositories.NewSnapshotRepository(c.DB)
	snap, err := repo.FetchAll()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	balance := services.ComputeStockBalance(snap.StockItems, snap.StockInRecords, snap.StockOutRecords)
	summary := services.ComputeVehicleCostSummary(snap)

	f := excelize.NewFile()
	stockSheet := "Stock Balance"
	f.SetSheetName("Sheet1", stockSheet)

	f.SetCellValue(stockSheet, "A1", "Item Code")
	f.SetCellValue(stockSheet, "B1", "Item Name")
	f.SetCellValue(stockSheet, "C1", "Category")
	f.SetCellValue(stockSheet, "D1", "Unit")
	f.SetCellValue(stockSheet, "E1", "Opening")
	f.SetCellValue(stockSheet, "F1", "Total In")
	f.SetCellValue(stockSheet, "G1", "Total Out")
	f.SetCellValue(stockSheet, "H1", "Balance")
	f.SetCellValue(stockSheet, "I1", "Value")
	f.SetCellValue(stockSheet, "J1", "Status")

	for i, row := range balance.Rows {
		f.SetCellValue(stockSheet, fmt.Sprintf("A%d", i+2), row.ItemCode)
		f.SetCellValue(stockSheet, fmt.Sprintf("B%d", i+2), row.ItemName)
		f.SetCellValue(stockSheet, fmt.Sprintf("C%d", i+2), row.Category)
		f.SetCellValue(stockSheet, fmt.Sprintf("D%d", i+2), row.Unit)
		f.SetCellValue(stockSheet, fmt.Sprintf("E%d", i+2), row.OpeningStock)
		f.SetCellValue(stockSheet, fmt.Sprintf("F%d", i+2), row.TotalIn)
		f.SetCellValue(stockSheet, fmt.Sprintf("G%d", i+2), row.TotalOut)
		f.SetCellValue(stockSheet, fmt.Sprintf("H%d", i+2), row.Balance)
		f.SetCellValue(stockSheet, fmt.Sprintf("I%d", i+2), row.Value)
		f.SetCellValue(stockSheet, fmt.Sprintf("J%d", i+2), row.Status)
	}

	expenseSheet := "Vehicle Expenses"
	if _, err := f.NewSheet(expenseSheet); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f.SetCellValue(expenseSheet, "A1", "Vehicle")
	f.SetCellValue(expenseSheet, "B1", "Fuel")
	f.SetCellValue(expenseSheet, "C1", "Maintenance")
	f.SetCellValue(expenseSheet, "D1", "Repair")
	f.SetCellValue(expenseSheet, "E1", "Insurance")
	f.SetCellValue(expenseSheet, "F1", "Total")

	for i, row := range summary.PerVehicle {
		f.SetCellValue(expenseSheet, fmt.Sprintf("A%d", i+2), row.VehicleID)
		f.SetCellValue(expenseSheet, fmt.Sprintf("B%d", i+2), row.Fuel)
		f.SetCellValue(expenseSheet, fmt.Sprintf("C%d", i+2), row.Maintenance)
		f.SetCellValue(expenseSheet, fmt.Sprintf("D%d", i+2), row.Repair)
		f.SetCellValue(expenseSheet, fmt.Sprintf("E%d", i+2), row.Insurance)
		f.SetCellValue(expenseSheet, fmt.Sprintf("F%d", i+2), row.Total)
	}

	totalsRow := len(summary.PerVehicle) + 2
	f.SetCellValue(expenseSheet, fmt.Sprintf("A%d", totalsRow), "TOTAL")
	f.SetCellValue(expenseSheet, fmt.Sprintf("B%d", totalsRow), summary.Totals.Fuel)
	f.SetCellValue(expenseSheet, fmt.Sprintf("C%d", totalsRow), summary.Totals.Maintenance)
	f.SetCellValue(expenseSheet, fmt.Sprintf("D%d", totalsRow), summary.Totals.Repair)
	f.SetCellValue(expenseSheet, fmt.Sprintf("E%d", totalsRow), summary.Totals.Insurance)
	f.SetCellValue(expenseSheet, fmt.Sprintf("F%d", totalsRow), summary.Totals.Grand)

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="farm-report.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).SendString("Failed to generate Excel report")
	}

	return nil
}
