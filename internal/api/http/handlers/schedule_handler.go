package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staff-planner/internal/api/dto"
	"github.com/spec-kit/staff-planner/internal/forms"
	"github.com/spec-kit/staff-planner/internal/service"
	apperrors "github.com/spec-kit/staff-planner/pkg/util"
)

// ScheduleHandler serves the monthly schedule view and shift writes.
type ScheduleHandler struct {
	schedule *service.ScheduleService
}

// NewScheduleHandler constructs handler.
func NewScheduleHandler(schedule *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{schedule: schedule}
}

// View handles GET /schedule?month=&year=.
func (h *ScheduleHandler) View(c *fiber.Ctx) error {
	month, err := h.schedule.MonthView(c.Context(), c.Query("month"), c.Query("year"))
	if err != nil {
		return err
	}

	days := make(map[string][]dto.ShiftResponse, len(month.Days))
	for date, shifts := range month.Days {
		day := make([]dto.ShiftResponse, 0, len(shifts))
		for i := range shifts {
			day = append(day, shiftWithEmployeeResponse(&shifts[i]))
		}
		days[date] = day
	}

	return c.JSON(fiber.Map{"data": dto.ScheduleResponse{
		Year:       month.Year,
		Month:      month.Month,
		MonthLabel: month.MonthLabel,
		Prev:       dto.MonthTargetResponse{Year: month.Prev.Year, Month: month.Prev.Month},
		Next:       dto.MonthTargetResponse{Year: month.Next.Year, Month: month.Next.Month},
		Days:       days,
		DayOrder:   month.DayOrder,
		FormDefaults: dto.ShiftFormDefaultsResponse{
			Date:      month.FormDefaults.Date,
			StartTime: month.FormDefaults.StartTime,
			EndTime:   month.FormDefaults.EndTime,
		},
	}})
}

// CreateShift handles POST /schedule/shifts. The form carries the viewed
// month and year so the client can return to the same schedule page.
func (h *ScheduleHandler) CreateShift(c *fiber.Ctx) error {
	var raw forms.ShiftFormValues
	if err := c.BodyParser(&raw); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	shift, err := h.schedule.CreateShift(c.Context(), raw)
	if err != nil {
		return err
	}

	year, month := service.ResolveMonthYear(raw.Month, raw.Year, time.Now())
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{
		"shift":    shiftResponse(shift),
		"schedule": dto.MonthTargetResponse{Year: year, Month: month},
	}})
}

// DeleteShift handles POST /schedule/shifts/:id/delete.
func (h *ScheduleHandler) DeleteShift(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id", "shift")
	if err != nil {
		return err
	}
	if err := h.schedule.DeleteShift(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "deleted"}})
}
