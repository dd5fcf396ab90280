package controllers

import (
	"errors"
	"regexp"

	"farm-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type VehicleController struct {
	DB *gorm.DB
}

func NewVehicleController(DB *gorm.DB) *VehicleController {
	return &VehicleController{DB: DB}
}

// Internal vehicle codes look like TR-0001: an upper-case prefix, a dash and
// a number.
var vehicleIDPattern = regexp.MustCompile(`^[A-Z]+-[0-9]+$`)

type vehicleInput struct {
	ID           string `json:"id" validate:"required"`
	LegalPlateNo string `json:"legalPlateNo" validate:"required"`
	ProvinceCode string `json:"provinceCode" validate:"required"`
	Type         string `json:"type" validate:"required"`
	MakeModel    string `json:"makeModel" validate:"required"`
	Year         string `json:"year"`
	EngineNo     string `json:"engineNo"`
	ChassisNo    string `json:"chassisNo"`
	Status       string `json:"status" validate:"required"`
	JoinedDate   string `json:"joinedDate"`
}

func (c *VehicleController) CreateVehicle(ctx *fiber.Ctx) error {

	var input vehicleInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if !vehicleIDPattern.MatchString(input.ID) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Vehicle ID must match PREFIX-NUMBER, e.g. TR-0001"})
	}

	var existing models.Vehicle
	if err := c.DB.Where("id = ?", input.ID).First(&existing).Error; err == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Vehicle ID already exists"})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	vehicle := models.Vehicle{
		ID:           input.ID,
		LegalPlateNo: input.LegalPlateNo,
		ProvinceCode: input.ProvinceCode,
		Type:         input.Type,
		MakeModel:    input.MakeModel,
		Year:         input.Year,
		EngineNo:     input.EngineNo,
		ChassisNo:    input.ChassisNo,
		Status:       input.Status,
		JoinedDate:   input.JoinedDate,
	}

	if err := c.DB.Create(&vehicle).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Vehicle created successfully", "data": vehicle})
}

func (c *VehicleController) GetAllVehicles(ctx *fiber.Ctx) error {
	var vehicles []models.Vehicle
	if err := c.DB.Find(&vehicles).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Vehicles found", "data": vehicles})
}

func (c *VehicleController) GetVehicleByID(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var vehicle models.Vehicle
	if err := c.DB.Where("id = ?", id).First(&vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vehicle not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Vehicle found", "data": vehicle})
}

// UpdateVehicle replaces the whole record; there are no partial patch
// semantics.
func (c *VehicleController) UpdateVehicle(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var vehicle models.Vehicle
	if err := c.DB.Where("id = ?", id).First(&vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vehicle not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input vehicleInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	vehicle.LegalPlateNo = input.LegalPlateNo
	vehicle.ProvinceCode = input.ProvinceCode
	vehicle.Type = input.Type
	vehicle.MakeModel = input.MakeModel
	vehicle.Year = input.Year
	vehicle.EngineNo = input.EngineNo
	vehicle.ChassisNo = input.ChassisNo
	vehicle.Status = input.Status
	vehicle.JoinedDate = input.JoinedDate

	if err := c.DB.Save(&vehicle).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Vehicle updated successfully", "data": vehicle})
}

// DeleteVehicle removes only the vehicle row. Child logs keep their weak
// vehicleId reference and render as "not found" downstream.
func (c *VehicleController) DeleteVehicle(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var vehicle models.Vehicle
	if err := c.DB.Where("id = ?", id).First(&vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vehicle not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&vehicle).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Vehicle deleted successfully"})
}
