package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/staff-planner/internal/persistence"
	"github.com/spec-kit/staff-planner/internal/repository"
	apperrors "github.com/spec-kit/staff-planner/pkg/util"
)

const (
	dashboardCacheKey = "dashboard:counts"
	dashboardCacheTTL = 30 * time.Second
)

// DashboardService aggregates the counters shown on the landing page.
type DashboardService struct {
	departments repository.DepartmentRepository
	employees   repository.EmployeeRepository
	shifts      repository.ShiftRepository
	cache       *persistence.Redis
	logger      *zap.Logger
	now         func() time.Time
}

// NewDashboardService constructs the service. The cache is optional; lookups
// degrade to the store when it is unreachable.
func NewDashboardService(
	departments repository.DepartmentRepository,
	employees repository.EmployeeRepository,
	shifts repository.ShiftRepository,
	cache *persistence.Redis,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		departments: departments,
		employees:   employees,
		shifts:      shifts,
		cache:       cache,
		logger:      logger,
		now:         time.Now,
	}
}

// DashboardCounts are the totals for the landing page.
type DashboardCounts struct {
	Employees   int64 `json:"employees"`
	Departments int64 `json:"departments"`
	ShiftsMonth int64 `json:"shifts_this_month"`
	Year        int   `json:"year"`
	Month       int   `json:"month"`
}

// Counts returns the dashboard totals, served from the cache when fresh.
func (s *DashboardService) Counts(ctx context.Context) (*DashboardCounts, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	now := s.now()
	counts := &DashboardCounts{Year: now.Year(), Month: int(now.Month())}

	var err error
	if counts.Employees, err = s.employees.CountAll(ctx); err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	if counts.Departments, err = s.departments.CountAll(ctx); err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	if counts.ShiftsMonth, err = s.shifts.CountForMonth(ctx, counts.Year, counts.Month); err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}

	s.toCache(ctx, counts)
	return counts, nil
}

func (s *DashboardService) fromCache(ctx context.Context) *DashboardCounts {
	if s.cache == nil || s.cache.Client == nil {
		return nil
	}
	payload, err := s.cache.Client.Get(ctx, dashboardCacheKey).Bytes()
	if err != nil {
		return nil
	}
	var counts DashboardCounts
	if err := json.Unmarshal(payload, &counts); err != nil {
		return nil
	}
	return &counts
}

func (s *DashboardService) toCache(ctx context.Context, counts *DashboardCounts) {
	if s.cache == nil || s.cache.Client == nil {
		return
	}
	payload, err := json.Marshal(counts)
	if err != nil {
		return
	}
	if err := s.cache.Client.Set(ctx, dashboardCacheKey, payload, dashboardCacheTTL).Err(); err != nil {
		s.logger.Debug("dashboard cache write failed", zap.Error(err))
	}
}
