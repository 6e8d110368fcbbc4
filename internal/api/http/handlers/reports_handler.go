package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staff-planner/internal/api/dto"
	"github.com/spec-kit/staff-planner/internal/export"
	"github.com/spec-kit/staff-planner/internal/service"
	apperrors "github.com/spec-kit/staff-planner/pkg/util"
)

// ReportsHandler serves the monthly hours report.
type ReportsHandler struct {
	reports *service.ReportService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(reports *service.ReportService) *ReportsHandler {
	return &ReportsHandler{reports: reports}
}

// Month handles GET /reports/month?month=&year=.
func (h *ReportsHandler) Month(c *fiber.Ctx) error {
	report, err := h.reports.MonthlyReport(c.Context(), c.Query("month"), c.Query("year"))
	if err != nil {
		return err
	}

	rows := make([]dto.ReportRowResponse, 0, len(report.Rows))
	for _, row := range report.Rows {
		rows = append(rows, dto.ReportRowResponse{
			EmployeeID:   row.EmployeeID,
			EmployeeName: row.EmployeeName,
			ShiftCount:   row.ShiftCount,
			WorkedHours:  row.WorkedHours,
			TargetHours:  row.TargetHours,
			Difference:   row.Difference,
		})
	}
	return c.JSON(fiber.Map{"data": dto.MonthlyReportResponse{
		Year:       report.Year,
		Month:      report.Month,
		MonthLabel: report.MonthLabel,
		Rows:       rows,
		TotalHours: report.TotalHours,
	}})
}

// Export handles GET /reports/month/export?month=&year= and streams the
// report as an xlsx workbook.
func (h *ReportsHandler) Export(c *fiber.Ctx) error {
	report, err := h.reports.MonthlyReport(c.Context(), c.Query("month"), c.Query("year"))
	if err != nil {
		return err
	}

	workbook, err := export.MonthlyReportWorkbook(report)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	defer workbook.Close() //nolint:errcheck

	buf, err := workbook.WriteToBuffer()
	if err != nil {
		return apperrors.NewInternalError(err)
	}

	filename := fmt.Sprintf("report-%04d-%02d.xlsx", report.Year, report.Month)
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(buf.Bytes())
}
