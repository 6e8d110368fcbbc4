package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	goversion "github.com/caarlos0/go-version"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/staff-planner/internal/api/http"
	"github.com/spec-kit/staff-planner/internal/api/http/handlers"
	"github.com/spec-kit/staff-planner/internal/auth"
	"github.com/spec-kit/staff-planner/internal/config"
	"github.com/spec-kit/staff-planner/internal/observability"
	"github.com/spec-kit/staff-planner/internal/persistence"
	"github.com/spec-kit/staff-planner/internal/repository"
	"github.com/spec-kit/staff-planner/internal/service"
)

var (
	version     = "dev"
	commit      = ""
	date        = ""
	showVersion = flag.Bool("version", false, "print version and exit")
)

func main() {
	flag.Parse()
	if *showVersion {
		fmt.Print(buildVersion().String())
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	departmentRepo := repository.NewDepartmentRepository(pool)
	employeeRepo := repository.NewEmployeeRepository(pool)
	shiftRepo := repository.NewShiftRepository(pool)
	leaveRepo := repository.NewLeaveRepository(pool)
	adminRepo := repository.NewAdminRepository(pool)

	departmentService := service.NewDepartmentService(departmentRepo)
	employeeService := service.NewEmployeeService(employeeRepo)
	scheduleService := service.NewScheduleService(shiftRepo)
	leaveService := service.NewLeaveService(leaveRepo)
	reportService := service.NewReportService(employeeRepo, shiftRepo)
	dashboardService := service.NewDashboardService(departmentRepo, employeeRepo, shiftRepo, redis, logger)
	authService := service.NewAuthService(cfg.Auth, adminRepo)

	if pool != nil {
		if err := authService.EnsureBootstrapAdmin(ctx, cfg.Auth, logger); err != nil {
			logger.Fatal("failed to seed bootstrap admin", zap.Error(err))
		}
	}

	authMiddleware := auth.NewMiddleware(authService.TokenManager(), adminRepo)
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Dashboard:      handlers.NewDashboardHandler(dashboardService),
		Departments:    handlers.NewDepartmentsHandler(departmentService),
		Employees:      handlers.NewEmployeesHandler(employeeService, departmentService),
		Schedule:       handlers.NewScheduleHandler(scheduleService),
		Leaves:         handlers.NewLeavesHandler(leaveService),
		Reports:        handlers.NewReportsHandler(reportService),
		Auth:           handlers.NewAuthHandler(authService),
		AuthMiddleware: authMiddleware,
		AuthEnabled:    cfg.Auth.Enabled,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}

func buildVersion() goversion.Info {
	return goversion.GetVersionInfo(
		goversion.WithAppDetails("staff-planner", "Staffing roster and monthly schedule service", ""),
		func(i *goversion.Info) {
			if version != "" {
				i.GitVersion = version
			}
			if commit != "" {
				i.GitCommit = commit
			}
			if date != "" {
				i.BuildDate = date
			}
		},
	)
}
