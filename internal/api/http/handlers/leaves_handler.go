package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staff-planner/internal/api/dto"
	"github.com/spec-kit/staff-planner/internal/forms"
	"github.com/spec-kit/staff-planner/internal/service"
	apperrors "github.com/spec-kit/staff-planner/pkg/util"
)

// LeavesHandler exposes absence-request endpoints.
type LeavesHandler struct {
	leaves *service.LeaveService
}

// NewLeavesHandler constructs handler.
func NewLeavesHandler(leaves *service.LeaveService) *LeavesHandler {
	return &LeavesHandler{leaves: leaves}
}

// List handles GET /leaves?month=&year=.
func (h *LeavesHandler) List(c *fiber.Ctx) error {
	leaves, year, month, err := h.leaves.ListForMonth(c.Context(), c.Query("month"), c.Query("year"))
	if err != nil {
		return err
	}
	resp := make([]dto.LeaveResponse, 0, len(leaves))
	for i := range leaves {
		resp = append(resp, leaveResponse(&leaves[i]))
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"year":   year,
		"month":  month,
		"leaves": resp,
	}})
}

// Create handles POST /leaves.
func (h *LeavesHandler) Create(c *fiber.Ctx) error {
	var raw forms.LeaveFormValues
	if err := c.BodyParser(&raw); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	leave, err := h.leaves.Create(c.Context(), raw)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{
		"id":         leave.ID,
		"start_date": leave.StartDate.Format("2006-01-02"),
		"end_date":   leave.EndDate.Format("2006-01-02"),
		"leave_type": leave.LeaveType,
		"approved":   leave.Approved,
	}})
}

// Approve handles POST /leaves/:id/approve.
func (h *LeavesHandler) Approve(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id", "leave")
	if err != nil {
		return err
	}
	if err := h.leaves.Approve(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "approved"}})
}

// Decline handles POST /leaves/:id/decline.
func (h *LeavesHandler) Decline(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id", "leave")
	if err != nil {
		return err
	}
	if err := h.leaves.Decline(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "declined"}})
}

// Delete handles POST /leaves/:id/delete.
func (h *LeavesHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id", "leave")
	if err != nil {
		return err
	}
	if err := h.leaves.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "deleted"}})
}
