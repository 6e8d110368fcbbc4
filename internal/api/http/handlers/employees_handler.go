package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staff-planner/internal/api/dto"
	"github.com/spec-kit/staff-planner/internal/forms"
	"github.com/spec-kit/staff-planner/internal/service"
	apperrors "github.com/spec-kit/staff-planner/pkg/util"
)

// EmployeesHandler exposes employee management endpoints. The form screens
// (new, edit) also deliver the department list the select box needs.
type EmployeesHandler struct {
	employees   *service.EmployeeService
	departments *service.DepartmentService
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(employees *service.EmployeeService, departments *service.DepartmentService) *EmployeesHandler {
	return &EmployeesHandler{employees: employees, departments: departments}
}

// List handles GET /employees.
func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	emps, err := h.employees.List(c.Context())
	if err != nil {
		return err
	}
	resp := make([]dto.EmployeeResponse, 0, len(emps))
	for i := range emps {
		resp = append(resp, employeeWithDepartmentResponse(&emps[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// New handles GET /employees/new.
func (h *EmployeesHandler) New(c *fiber.Ctx) error {
	depts, err := h.departments.List(c.Context())
	if err != nil {
		return err
	}
	deptResp := make([]dto.DepartmentResponse, 0, len(depts))
	for i := range depts {
		deptResp = append(deptResp, departmentResponse(&depts[i]))
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"departments": deptResp,
		"values":      forms.EmployeeFormValues{EmploymentType: "full_time"},
	}})
}

// Create handles POST /employees.
func (h *EmployeesHandler) Create(c *fiber.Ctx) error {
	var raw forms.EmployeeFormValues
	if err := c.BodyParser(&raw); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	emp, err := h.employees.Create(c.Context(), raw)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": employeeResponse(emp)})
}

// Edit handles GET /employees/:id/edit.
func (h *EmployeesHandler) Edit(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id", "employee")
	if err != nil {
		return err
	}
	emp, err := h.employees.Get(c.Context(), id)
	if err != nil {
		return err
	}
	depts, err := h.departments.List(c.Context())
	if err != nil {
		return err
	}
	deptResp := make([]dto.DepartmentResponse, 0, len(depts))
	for i := range depts {
		deptResp = append(deptResp, departmentResponse(&depts[i]))
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"employee":    employeeWithDepartmentResponse(emp),
		"departments": deptResp,
	}})
}

// Update handles POST /employees/:id.
func (h *EmployeesHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id", "employee")
	if err != nil {
		return err
	}
	var raw forms.EmployeeFormValues
	if err := c.BodyParser(&raw); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	emp, err := h.employees.Update(c.Context(), id, raw)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": employeeResponse(emp)})
}

// Delete handles POST /employees/:id/delete. Shifts and leaves belonging to
// the employee go with it.
func (h *EmployeesHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id", "employee")
	if err != nil {
		return err
	}
	if err := h.employees.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "deleted"}})
}
