package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staff-planner/internal/api/dto"
	"github.com/spec-kit/staff-planner/internal/domain"
	apperrors "github.com/spec-kit/staff-planner/pkg/util"
)

// parseIDParam reads a positive integer path parameter.
func parseIDParam(c *fiber.Ctx, name, resource string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id < 1 {
		return 0, apperrors.NewNotFound(resource, nil)
	}
	return id, nil
}

func departmentResponse(dept *domain.Department) dto.DepartmentResponse {
	return dto.DepartmentResponse{
		ID:        dept.ID,
		Name:      dept.Name,
		CreatedAt: dept.CreatedAt,
	}
}

func employeeResponse(emp *domain.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:             emp.ID,
		Name:           emp.Name,
		Email:          emp.Email,
		EmploymentType: string(emp.EmploymentType),
		HoursPerMonth:  emp.HoursPerMonth,
		DepartmentID:   emp.DepartmentID,
		CreatedAt:      emp.CreatedAt,
	}
}

func employeeWithDepartmentResponse(emp *domain.EmployeeWithDepartment) dto.EmployeeResponse {
	resp := employeeResponse(&emp.Employee)
	resp.DepartmentName = emp.DepartmentName
	return resp
}

func shiftResponse(shift *domain.Shift) dto.ShiftResponse {
	return dto.ShiftResponse{
		ID:         shift.ID,
		EmployeeID: shift.EmployeeID,
		Date:       shift.ISODate(),
		StartTime:  shift.StartTime,
		EndTime:    shift.EndTime,
	}
}

func shiftWithEmployeeResponse(shift *domain.ShiftWithEmployee) dto.ShiftResponse {
	resp := shiftResponse(&shift.Shift)
	resp.EmployeeName = shift.EmployeeName
	return resp
}

func leaveResponse(leave *domain.LeaveWithEmployee) dto.LeaveResponse {
	return dto.LeaveResponse{
		ID:           leave.ID,
		EmployeeID:   leave.EmployeeID,
		EmployeeName: leave.EmployeeName,
		StartDate:    leave.StartDate.Format("2006-01-02"),
		EndDate:      leave.EndDate.Format("2006-01-02"),
		LeaveType:    leave.LeaveType,
		Approved:     leave.Approved,
		Notes:        leave.Notes,
	}
}
