package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"farm-app/models"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T, tables ...interface{}) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(tables...); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request %s: %v", path, err)
	}
	return resp
}

func TestCreateFuelLogDoesNotInheritEarlierRequest(t *testing.T) {
	db := newTestDB(t, &models.FuelLog{})
	app := fiber.New()
	controller := NewFuelLogController(db)
	app.Post("/fuel-logs", controller.CreateFuelLog)

	resp := postJSON(t, app, "/fuel-logs",
		`{"id":"f1","vehicleId":"TR-0001","date":"2025-01-01","supplier":"Shell","cost":9000}`)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("first create status = %d", resp.StatusCode)
	}

	// The second body omits supplier and cost; the stored record must not
	// carry the first request's values.
	resp = postJSON(t, app, "/fuel-logs",
		`{"id":"f2","vehicleId":"LR-0002","date":"2025-01-02"}`)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("second create status = %d", resp.StatusCode)
	}

	var stored models.FuelLog
	if err := db.Where("id = ?", "f2").First(&stored).Error; err != nil {
		t.Fatal(err)
	}
	if stored.Supplier != "" || stored.Cost != 0 {
		t.Errorf("f2 stored as supplier=%q cost=%g, want empty supplier and zero cost", stored.Supplier, stored.Cost)
	}
	if stored.VehicleID != "LR-0002" || stored.Date != "2025-01-02" {
		t.Errorf("f2 stored as %+v", stored)
	}
}

func TestUpdateFuelLogDoesNotInheritEarlierRequest(t *testing.T) {
	db := newTestDB(t, &models.FuelLog{})
	app := fiber.New()
	controller := NewFuelLogController(db)
	app.Post("/fuel-logs", controller.CreateFuelLog)
	app.Put("/fuel-logs/:id", controller.UpdateFuelLog)

	postJSON(t, app, "/fuel-logs",
		`{"id":"f1","vehicleId":"TR-0001","date":"2025-01-01","supplier":"Shell","cost":9000}`)

	req := httptest.NewRequest(fiber.MethodPut, "/fuel-logs/f1",
		strings.NewReader(`{"vehicleId":"TR-0001","date":"2025-01-03"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("update status = %d", resp.StatusCode)
	}

	var stored models.FuelLog
	if err := db.Where("id = ?", "f1").First(&stored).Error; err != nil {
		t.Fatal(err)
	}
	if stored.Supplier != "" || stored.Cost != 0 {
		t.Errorf("update replaced the record with supplier=%q cost=%g, want fields omitted from the body stored as zero", stored.Supplier, stored.Cost)
	}
}
