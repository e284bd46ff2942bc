package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/nomina-backend-go/internal/config"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/bonus"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/incident"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/master/branch"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/period"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/vacation"
	"github.com/cmlabs-hris/nomina-backend-go/internal/fixtures"
	appHTTP "github.com/cmlabs-hris/nomina-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/nomina-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/nomina-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/nomina-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/nomina-backend-go/internal/repository/memory"
	"github.com/cmlabs-hris/nomina-backend-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/nomina-backend-go/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/nomina-backend-go/internal/service/auth"
	bonusService "github.com/cmlabs-hris/nomina-backend-go/internal/service/bonus"
	dashboardService "github.com/cmlabs-hris/nomina-backend-go/internal/service/dashboard"
	employeeService "github.com/cmlabs-hris/nomina-backend-go/internal/service/employee"
	incidentService "github.com/cmlabs-hris/nomina-backend-go/internal/service/incident"
	"github.com/cmlabs-hris/nomina-backend-go/internal/service/master"
	payrollService "github.com/cmlabs-hris/nomina-backend-go/internal/service/payroll"
	reportService "github.com/cmlabs-hris/nomina-backend-go/internal/service/report"
	userService "github.com/cmlabs-hris/nomina-backend-go/internal/service/user"
	vacationService "github.com/cmlabs-hris/nomina-backend-go/internal/service/vacation"
	"github.com/cmlabs-hris/nomina-backend-go/migrations"
	"github.com/go-chi/httplog/v3"
)

// repositories is the backend-independent set of stores the services run on.
type repositories struct {
	tx         database.TxManager
	branch     branch.BranchRepository
	employee   employee.EmployeeRepository
	user       user.UserRepository
	incident   incident.IncidentRepository
	template   bonus.TemplateRepository
	payroll    payroll.PayrollRepository
	attendance attendance.AttendanceRepository
	vacation   vacation.VacationRepository
	close      func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logLevel, _ := cfg.SlogLevel()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       logLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "nomina-pro"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		slog.Error("Failed to open store", "driver", cfg.Store.Driver, "error", err)
		os.Exit(1)
	}
	defer repos.close()

	if err := applyReferenceDate(ctx, cfg, repos.payroll); err != nil {
		slog.Error("Failed to initialize reference date", "error", err)
		os.Exit(1)
	}

	policy := payroll.WithholdingPolicy{
		Name:     payroll.FlatRatePolicy.Name,
		ISRRate:  cfg.Payroll.ISRRate,
		IMSSRate: cfg.Payroll.IMSSRate,
	}
	calculator := payroll.NewCalculator(policy)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessTTL)

	authService := serviceAuth.NewAuthService(repos.user, JWTService)
	branchService := master.NewBranchService(repos.branch)
	userSvc := userService.NewUserService(repos.user, repos.branch, repos.employee)
	employeeSvc := employeeService.NewEmployeeService(repos.employee, repos.branch, repos.payroll)
	incidentSvc := incidentService.NewIncidentService(repos.incident, repos.employee, repos.payroll)
	payrollSvc := payrollService.NewPayrollService(
		repos.tx,
		calculator,
		repos.payroll,
		repos.employee,
		repos.incident,
		repos.branch,
	)
	bonusSvc := bonusService.NewBonusService(
		repos.tx,
		repos.template,
		repos.employee,
		repos.incident,
		repos.payroll,
	)
	attendanceSvc := attendanceService.NewAttendanceService(repos.attendance, repos.employee, repos.payroll)
	vacationSvc := vacationService.NewVacationService(repos.vacation, repos.employee, repos.payroll)
	reportSvc := reportService.NewReportService(repos.employee, repos.incident, repos.branch, repos.payroll)
	dashboardSvc := dashboardService.NewDashboardService(payrollSvc, repos.employee, repos.incident, repos.vacation)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authService),
		Period:     appHTTP.NewPeriodHandler(payrollSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc, incidentSvc, vacationSvc),
		Bonus:      appHTTP.NewBonusHandler(bonusSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Vacation:   appHTTP.NewVacationHandler(vacationSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		User:       appHTTP.NewUserHandler(userSvc),
		Branch:     appHTTP.NewBranchHandler(branchService),
		Self:       appHTTP.NewSelfHandler(payrollSvc, incidentSvc, vacationSvc, attendanceSvc),
	}

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		Logger:         logger,
		LogLevel:       logLevel,
		AllowedOrigins: cfg.App.AllowedOrigins,
	}, JWTService, repos.user, handlers)

	scheduler := cron.NewScheduler()
	cron.NewTokenJobs(JWTService).RegisterJobs(scheduler, 15*time.Minute)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr, "store", cfg.Store.Driver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
}

func openRepositories(ctx context.Context, cfg *config.Config) (*repositories, error) {
	switch cfg.Store.Driver {
	case config.StorePostgres:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := migrations.Apply(ctx, db); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply migrations: %w", err)
		}
		return &repositories{
			tx:         postgresql.NewTxManager(db),
			branch:     postgresql.NewBranchRepository(db),
			employee:   postgresql.NewEmployeeRepository(db),
			user:       postgresql.NewUserRepository(db),
			incident:   postgresql.NewIncidentRepository(db),
			template:   postgresql.NewTemplateRepository(db),
			payroll:    postgresql.NewPayrollRepository(db),
			attendance: postgresql.NewAttendanceRepository(db),
			vacation:   postgresql.NewVacationRepository(db),
			close:      db.Close,
		}, nil
	default:
		ds, err := fixtures.Load(cfg.Store.FixturesPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load fixtures: %w", err)
		}
		store := memory.NewStore(ds)
		return &repositories{
			tx:         database.NoopTxManager{},
			branch:     memory.NewBranchRepository(store),
			employee:   memory.NewEmployeeRepository(store),
			user:       memory.NewUserRepository(store),
			incident:   memory.NewIncidentRepository(store),
			template:   memory.NewTemplateRepository(store),
			payroll:    memory.NewPayrollRepository(store),
			attendance: memory.NewAttendanceRepository(store),
			vacation:   memory.NewVacationRepository(store),
			close:      func() {},
		}, nil
	}
}

// applyReferenceDate overrides the stored simulation date when one is
// configured, and falls back to today on a store that has none yet.
func applyReferenceDate(ctx context.Context, cfg *config.Config, repo payroll.PayrollRepository) error {
	if cfg.Payroll.ReferenceDate != "" {
		ref, err := period.ParseReferenceDate(cfg.Payroll.ReferenceDate)
		if err != nil {
			return err
		}
		return repo.SetReferenceDate(ctx, ref)
	}

	_, err := repo.GetReferenceDate(ctx)
	if errors.Is(err, payroll.ErrReferenceDateNotSet) {
		now := time.Now().In(period.Location)
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, period.Location)
		slog.Warn("No reference date stored, starting from today", "date", period.DayKey(today))
		return repo.SetReferenceDate(ctx, today)
	}
	return err
}
