package controllers

import (
	"testing"

	"farm-app/models"

	"github.com/gofiber/fiber/v2"
)

const validVehicleBody = `{"id":"TR-0001","legalPlateNo":"WP-1234","provinceCode":"WP","type":"Tractor","makeModel":"Massey 240","status":"Active"}`

func TestCreateVehicleRejectsDuplicateID(t *testing.T) {
	db := newTestDB(t, &models.Vehicle{})
	if err := db.Create(&models.Vehicle{ID: "TR-0001"}).Error; err != nil {
		t.Fatal(err)
	}

	app := fiber.New()
	controller := NewVehicleController(db)
	app.Post("/vehicles", controller.CreateVehicle)

	resp := postJSON(t, app, "/vehicles", validVehicleBody)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("duplicate create status = %d, want 400", resp.StatusCode)
	}
}

func TestCreateVehicleSurfacesStorageErrorOnDuplicateCheck(t *testing.T) {
	db := newTestDB(t, &models.Vehicle{})

	app := fiber.New()
	controller := NewVehicleController(db)
	app.Post("/vehicles", controller.CreateVehicle)

	// A failed duplicate lookup is a storage error, not permission to create.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	sqlDB.Close()

	resp := postJSON(t, app, "/vehicles", validVehicleBody)
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("status = %d, want 500 when the duplicate check fails", resp.StatusCode)
	}
}
