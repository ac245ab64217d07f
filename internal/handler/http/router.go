package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/skellio/hr-backend-go/internal/domain/user"
	"github.com/skellio/hr-backend-go/internal/handler/http/middleware"
	"github.com/skellio/hr-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Company    CompanyHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Payroll    PayrollHandler
	Billing    BillingHandler
	Dashboard  DashboardHandler
}

func NewRouter(logger *slog.Logger, jwtService jwt.Service, frontendURL string, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Callback-Token", "X-Signature"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/register", h.Auth.Register)
			r.Post("/sync", h.Auth.SyncUser)
			r.Post("/employee/sync", h.Auth.SyncEmployee)
			r.Post("/update-password", h.Auth.UpdatePassword)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", h.Auth.LoginWithGoogle)
				r.Get("/callback/google", h.Auth.OAuthCallbackGoogle)
			})
		})

		// Company registration happens during signup, before a token
		// exists.
		r.Post("/companies", h.Company.Register)

		// Webhook calls carry the processor's signature instead of a
		// bearer token.
		r.Post("/payment/webhook", h.Billing.Webhook)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/companies", func(r chi.Router) {
				r.Route("/my", func(r chi.Router) {
					r.Get("/", h.Company.GetMy)
					r.With(middleware.RequirePermission(user.PermissionCompanyManage)).Patch("/", h.Company.UpdateMy)
				})
				r.With(middleware.RequireAdmin).Get("/", h.Company.List)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.ListEmployees)
				r.With(middleware.RequirePermission(user.PermissionEmployeeManage)).Post("/", h.Employee.CreateEmployee)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Employee.GetEmployee)
					r.With(middleware.RequirePermission(user.PermissionEmployeeManage)).Patch("/", h.Employee.UpdateEmployee)
					r.With(middleware.RequirePermission(user.PermissionEmployeeManage)).Delete("/", h.Employee.DeleteEmployee)
					r.With(middleware.RequirePermission(user.PermissionEmployeeManage)).Post("/account", h.Employee.SetupAccount)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", h.Attendance.ListByDate)
				r.With(middleware.RequirePermission(user.PermissionAttendanceMark)).Post("/", h.Attendance.Mark)
				r.Get("/employee/{employeeId}", h.Attendance.ListByEmployee)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Get("/", h.Leave.List)
				r.Post("/", h.Leave.Create)
				r.Get("/employee/{employeeId}", h.Leave.ListByEmployee)
				r.Route("/{id}", func(r chi.Router) {
					r.With(middleware.RequirePermission(user.PermissionLeaveApprove)).Patch("/", h.Leave.Transition)
					r.Delete("/", h.Leave.Delete)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/", h.Payroll.ListByPeriod)
				r.With(middleware.RequirePermission(user.PermissionPayrollGenerate)).Post("/", h.Payroll.Generate)
				r.Get("/employee/{employeeId}", h.Payroll.ListByEmployee)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Payroll.Get)
					r.With(middleware.RequirePermission(user.PermissionPayrollGenerate)).Patch("/", h.Payroll.UpdateStatus)
				})
			})

			r.Get("/subscription/check", h.Billing.CheckSubscription)
			r.With(middleware.RequirePermission(user.PermissionBillingManage)).Post("/payment/create-checkout", h.Billing.CreateCheckout)

			r.Get("/dashboard", h.Dashboard.Summary)
		})
	})

	return r
}
