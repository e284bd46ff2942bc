package http

import (
	"log/slog"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/nomina-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/nomina-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth       AuthHandler
	Period     PeriodHandler
	Employee   EmployeeHandler
	Bonus      BonusHandler
	Payroll    PayrollHandler
	Attendance AttendanceHandler
	Vacation   VacationHandler
	Report     ReportHandler
	Dashboard  DashboardHandler
	User       UserHandler
	Branch     BranchHandler
	Self       SelfHandler
}

type RouterConfig struct {
	Logger         *slog.Logger
	LogLevel       slog.Level
	AllowedOrigins []string
}

func NewRouter(cfg RouterConfig, JWTService jwt.Service, users user.UserRepository, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	if cfg.Logger != nil {
		r.Use(httplog.RequestLogger(cfg.Logger, &httplog.Options{
			Level:  cfg.LogLevel,
			Schema: httplog.SchemaECS,
		}))
	}

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Post("/auth/login", h.Auth.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService, users))

			r.Route("/auth", func(r chi.Router) {
				r.Post("/logout", h.Auth.Logout)
				r.Get("/me", h.Auth.Me)
			})

			r.Route("/period", func(r chi.Router) {
				r.Get("/current", h.Period.Current)
				r.Get("/resolve", h.Period.Resolve)
				r.Get("/history", h.Period.History)
			})

			r.Route("/employees", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionEmployeeRead)).Get("/", h.Employee.List)
				r.With(middleware.RequirePermission(user.PermissionEmployeeManage)).Post("/", h.Employee.Create)

				r.Route("/{id}", func(r chi.Router) {
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequirePermission(user.PermissionEmployeeRead))
						r.Get("/", h.Employee.Get)
						r.Get("/incidents", h.Employee.ListIncidents)
						r.Get("/vacations", h.Employee.ListVacations)
					})

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequirePermission(user.PermissionEmployeeManage))
						r.Put("/", h.Employee.Update)
						r.Post("/archive", h.Employee.Archive)
					})

					r.With(middleware.RequirePermission(user.PermissionIncidentCreate)).Post("/incidents", h.Employee.CreateIncident)
					r.With(middleware.RequirePermission(user.PermissionAttendanceView)).Get("/attendance", h.Attendance.Monthly)
				})
			})

			r.Route("/bonuses", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionBonusAssign))
					r.Get("/templates", h.Bonus.ListTemplates)
					r.Get("/templates/{id}/preview", h.Bonus.Preview)
					r.Post("/assign", h.Bonus.Assign)
				})
				r.With(middleware.RequirePermission(user.PermissionBonusManage)).Post("/templates", h.Bonus.CreateTemplate)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionPayrollProcess))
					r.Get("/", h.Payroll.List)
					r.Get("/employees/{id}", h.Payroll.GetEmployee)
					r.Get("/employees/{id}/payslip.pdf", h.Payroll.PayslipPDF)
					r.Post("/employees/{id}/pay", h.Payroll.Pay)
				})
				r.With(middleware.RequirePermission(user.PermissionPayrollClose)).Post("/close", h.Payroll.Close)
			})

			r.With(middleware.RequirePermission(user.PermissionAttendanceView)).Get("/attendance/today", h.Attendance.Today)
			r.With(middleware.RequirePermission(user.PermissionVacationReview)).Post("/vacations/{id}/review", h.Vacation.Review)

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionReportView))
				r.Get("/workforce", h.Report.Workforce)
				r.Get("/workforce.xlsx", h.Report.WorkforceSpreadsheet)
				r.Get("/headcount", h.Report.Headcount)
			})

			r.With(middleware.RequirePermission(user.PermissionDashboardView)).Get("/dashboard", h.Dashboard.Get)

			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionUserManage))
				r.Get("/", h.User.List)
				r.Post("/", h.User.Create)
				r.Put("/{id}", h.User.Update)
				r.Delete("/{id}", h.User.Delete)
			})

			r.Route("/branches", func(r chi.Router) {
				r.Get("/", h.Branch.List)
				r.With(middleware.RequirePermission(user.PermissionBranchManage)).Post("/", h.Branch.Create)
			})

			// Employee portal
			r.Route("/me", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionSelfService))
				r.Get("/", h.Auth.Me)
				r.Get("/payroll", h.Self.Payroll)
				r.Get("/incidents", h.Self.Incidents)
				r.Get("/vacations", h.Self.Vacations)
				r.Get("/attendance/today", h.Self.AttendanceToday)
				r.Post("/attendance/clock", h.Attendance.Clock)
				r.Post("/payslip/sign", h.Self.SignPayslip)
				r.Get("/payslip.pdf", h.Self.PayslipPDF)
				r.Post("/vacations", h.Vacation.Create)
			})
		})
	})
	return r
}
