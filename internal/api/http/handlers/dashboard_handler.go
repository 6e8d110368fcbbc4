package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staff-planner/internal/service"
)

// DashboardHandler serves the landing page counters.
type DashboardHandler struct {
	dashboard *service.DashboardService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Index handles GET /.
func (h *DashboardHandler) Index(c *fiber.Ctx) error {
	counts, err := h.dashboard.Counts(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": counts})
}
