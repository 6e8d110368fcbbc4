// Package export renders derived views into downloadable files.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/spec-kit/staff-planner/internal/service"
)

const reportSheet = "Monthly Report"

// MonthlyReportWorkbook builds an xlsx workbook for the monthly hours report.
// The caller owns the returned file and must Close it.
func MonthlyReportWorkbook(report *service.MonthlyReport) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	title := fmt.Sprintf("%s %d", report.MonthLabel, report.Year)
	if err := f.SetCellValue(reportSheet, "A1", title); err != nil {
		return nil, err
	}

	headers := []string{"Employee", "Shifts", "Worked Hours", "Target Hours", "Difference"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(reportSheet, cell, header); err != nil {
			return nil, err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(reportSheet, "A1", "E2", bold); err != nil {
		return nil, err
	}

	row := 3
	for _, r := range report.Rows {
		if err := f.SetCellValue(reportSheet, fmt.Sprintf("A%d", row), r.EmployeeName); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(reportSheet, fmt.Sprintf("B%d", row), r.ShiftCount); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(reportSheet, fmt.Sprintf("C%d", row), r.WorkedHours); err != nil {
			return nil, err
		}
		if r.TargetHours != nil {
			if err := f.SetCellValue(reportSheet, fmt.Sprintf("D%d", row), *r.TargetHours); err != nil {
				return nil, err
			}
		}
		if r.Difference != nil {
			if err := f.SetCellValue(reportSheet, fmt.Sprintf("E%d", row), *r.Difference); err != nil {
				return nil, err
			}
		}
		row++
	}

	if err := f.SetCellValue(reportSheet, fmt.Sprintf("A%d", row), "Total"); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(reportSheet, fmt.Sprintf("C%d", row), report.TotalHours); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(reportSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("E%d", row), bold); err != nil {
		return nil, err
	}

	if err := f.SetColWidth(reportSheet, "A", "A", 28); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(reportSheet, "B", "E", 14); err != nil {
		return nil, err
	}

	return f, nil
}
