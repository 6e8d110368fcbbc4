package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staff-planner/internal/api/http/handlers"
	"github.com/spec-kit/staff-planner/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Dashboard      *handlers.DashboardHandler
	Departments    *handlers.DepartmentsHandler
	Employees      *handlers.EmployeesHandler
	Schedule       *handlers.ScheduleHandler
	Leaves         *handlers.LeavesHandler
	Reports        *handlers.ReportsHandler
	Auth           *handlers.AuthHandler
	AuthMiddleware *auth.Middleware
	AuthEnabled    bool
}

// RegisterRoutes wires HTTP routes. When auth is enabled every mutating route
// requires a bearer token; reads stay open either way.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	guard := func(c *fiber.Ctx) error { return c.Next() }
	if cfg.AuthEnabled {
		guard = cfg.AuthMiddleware.Handle
	}

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Get("/", cfg.Dashboard.Index)

	app.Post("/auth/login", cfg.Auth.Login)
	app.Post("/auth/password/change", cfg.AuthMiddleware.Handle, cfg.Auth.ChangePassword)

	app.Get("/departments", cfg.Departments.List)
	app.Post("/departments", guard, cfg.Departments.Create)
	app.Post("/departments/:id/delete", guard, cfg.Departments.Delete)

	app.Get("/employees", cfg.Employees.List)
	app.Get("/employees/new", cfg.Employees.New)
	app.Post("/employees", guard, cfg.Employees.Create)
	app.Get("/employees/:id/edit", cfg.Employees.Edit)
	app.Post("/employees/:id/delete", guard, cfg.Employees.Delete)
	app.Post("/employees/:id", guard, cfg.Employees.Update)

	app.Get("/schedule", cfg.Schedule.View)
	app.Post("/schedule/shifts", guard, cfg.Schedule.CreateShift)
	app.Post("/schedule/shifts/:id/delete", guard, cfg.Schedule.DeleteShift)

	app.Get("/leaves", cfg.Leaves.List)
	app.Post("/leaves", guard, cfg.Leaves.Create)
	app.Post("/leaves/:id/approve", guard, cfg.Leaves.Approve)
	app.Post("/leaves/:id/decline", guard, cfg.Leaves.Decline)
	app.Post("/leaves/:id/delete", guard, cfg.Leaves.Delete)

	app.Get("/reports/month", cfg.Reports.Month)
	app.Get("/reports/month/export", cfg.Reports.Export)

	app.Use(notFoundHandler)
}

func notFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    "NOT_FOUND",
			"message": "page not found",
		},
	})
}
