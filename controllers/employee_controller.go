package controllers

import (
	"errors"

	"farm-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type EmployeeController struct {
	DB *gorm.DB
}

func NewEmployeeController(DB *gorm.DB) *EmployeeController {
	return &EmployeeController{DB: DB}
}

type employeeInput struct {
	EmpID         string  `json:"empId" validate:"required"`
	Name          string  `json:"name" validate:"required"`
	Designation   string  `json:"designation"`
	Address       string  `json:"address"`
	JoinDate      string  `json:"joinDate"`
	WagePerDay    float64 `json:"wagePerDay"`
	EmpType       string  `json:"empType"`
	IncrementDate string  `json:"incrementDate"`
	ProfilePic    string  `json:"profilePic"`
}

func validEmpType(empType string) bool {
	if empType == "" {
		return true
	}
	for _, t := range models.EmployeeTypes {
		if t == empType {
			return true
		}
	}
	return false
}

func (c *EmployeeController) CreateEmployee(ctx *fiber.Ctx) error {

	var input employeeInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if !validEmpType(input.EmpType) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid employee type"})
	}

	var existing models.Employee
	if err := c.DB.Where("emp_id = ?", input.EmpID).First(&existing).Error; err == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Employee ID already exists"})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	employee := models.Employee{
		EmpID:         input.EmpID,
		Name:          input.Name,
		Designation:   input.Designation,
		Address:       input.Address,
		JoinDate:      input.JoinDate,
		WagePerDay:    input.WagePerDay,
		EmpType:       input.EmpType,
		IncrementDate: input.IncrementDate,
		ProfilePic:    input.ProfilePic,
	}

	if err := c.DB.Create(&employee).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Employee created successfully", "data": employee})
}

func (c *EmployeeController) GetAllEmployees(ctx *fiber.Ctx) error {
	var employees []models.Employee
	if err := c.DB.Find(&employees).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Employees found", "data": employees})
}

func (c *EmployeeController) GetEmployeeByID(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var employee models.Employee
	if err := c.DB.Where("emp_id = ?", id).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Employee found", "data": employee})
}

func (c *EmployeeController) UpdateEmployee(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var employee models.Employee
	if err := c.DB.Where("emp_id = ?", id).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input employeeInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if !validEmpType(input.EmpType) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid employee type"})
	}

	employee.Name = input.Name
	employee.Designation = input.Designation
	employee.Address = input.Address
	employee.JoinDate = input.JoinDate
	employee.WagePerDay = input.WagePerDay
	employee.EmpType = input.EmpType
	employee.IncrementDate = input.IncrementDate
	employee.ProfilePic = input.ProfilePic

	if err := c.DB.Save(&employee).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Employee updated successfully", "data": employee})
}

func (c *EmployeeController) DeleteEmployee(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	result := c.DB.Where("emp_id = ?", id).Delete(&models.Employee{})
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": result.Error.Error()})
	}
	if result.RowsAffected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee not found"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Employee deleted successfully"})
}
