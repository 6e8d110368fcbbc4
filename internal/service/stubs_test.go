package service

import (
	"context"

	"github.com/spec-kit/staff-planner/internal/domain"
)

type stubDepartmentRepo struct {
	listFn   func(ctx context.Context) ([]domain.Department, error)
	createFn func(ctx context.Context, dept *domain.Department) error
	deleteFn func(ctx context.Context, id int64) error
	countFn  func(ctx context.Context) (int64, error)
}

func (s *stubDepartmentRepo) List(ctx context.Context) ([]domain.Department, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx)
}

func (s *stubDepartmentRepo) Create(ctx context.Context, dept *domain.Department) error {
	if s.createFn == nil {
		return nil
	}
	return s.createFn(ctx, dept)
}

func (s *stubDepartmentRepo) Delete(ctx context.Context, id int64) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, id)
}

func (s *stubDepartmentRepo) CountAll(ctx context.Context) (int64, error) {
	if s.countFn == nil {
		return 0, nil
	}
	return s.countFn(ctx)
}

type stubEmployeeRepo struct {
	listFn   func(ctx context.Context) ([]domain.EmployeeWithDepartment, error)
	getFn    func(ctx context.Context, id int64) (*domain.EmployeeWithDepartment, error)
	createFn func(ctx context.Context, emp *domain.Employee) error
	updateFn func(ctx context.Context, emp *domain.Employee) error
	deleteFn func(ctx context.Context, id int64) error
	countFn  func(ctx context.Context) (int64, error)
}

func (s *stubEmployeeRepo) List(ctx context.Context) ([]domain.EmployeeWithDepartment, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx)
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id int64) (*domain.EmployeeWithDepartment, error) {
	if s.getFn == nil {
		return nil, nil
	}
	return s.getFn(ctx, id)
}

func (s *stubEmployeeRepo) Create(ctx context.Context, emp *domain.Employee) error {
	if s.createFn == nil {
		return nil
	}
	return s.createFn(ctx, emp)
}

func (s *stubEmployeeRepo) Update(ctx context.Context, emp *domain.Employee) error {
	if s.updateFn == nil {
		return nil
	}
	return s.updateFn(ctx, emp)
}

func (s *stubEmployeeRepo) Delete(ctx context.Context, id int64) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, id)
}

func (s *stubEmployeeRepo) CountAll(ctx context.Context) (int64, error) {
	if s.countFn == nil {
		return 0, nil
	}
	return s.countFn(ctx)
}

type stubShiftRepo struct {
	listFn   func(ctx context.Context, year, month int) ([]domain.ShiftWithEmployee, error)
	createFn func(ctx context.Context, shift *domain.Shift) error
	deleteFn func(ctx context.Context, id int64) error
	countFn  func(ctx context.Context, year, month int) (int64, error)
}

func (s *stubShiftRepo) ListForMonth(ctx context.Context, year, month int) ([]domain.ShiftWithEmployee, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx, year, month)
}

func (s *stubShiftRepo) Create(ctx context.Context, shift *domain.Shift) error {
	if s.createFn == nil {
		return nil
	}
	return s.createFn(ctx, shift)
}

func (s *stubShiftRepo) Delete(ctx context.Context, id int64) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, id)
}

func (s *stubShiftRepo) CountForMonth(ctx context.Context, year, month int) (int64, error) {
	if s.countFn == nil {
		return 0, nil
	}
	return s.countFn(ctx, year, month)
}

type stubLeaveRepo struct {
	listFn    func(ctx context.Context, year, month int) ([]domain.LeaveWithEmployee, error)
	createFn  func(ctx context.Context, leave *domain.Leave) error
	approveFn func(ctx context.Context, id int64) error
	deleteFn  func(ctx context.Context, id int64) error
}

func (s *stubLeaveRepo) ListForMonth(ctx context.Context, year, month int) ([]domain.LeaveWithEmployee, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx, year, month)
}

func (s *stubLeaveRepo) Create(ctx context.Context, leave *domain.Leave) error {
	if s.createFn == nil {
		return nil
	}
	return s.createFn(ctx, leave)
}

func (s *stubLeaveRepo) Approve(ctx context.Context, id int64) error {
	if s.approveFn == nil {
		return nil
	}
	return s.approveFn(ctx, id)
}

func (s *stubLeaveRepo) Delete(ctx context.Context, id int64) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, id)
}
