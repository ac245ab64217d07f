package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/httplog/v3"

	"github.com/skellio/hr-backend-go/internal/config"
	appHTTP "github.com/skellio/hr-backend-go/internal/handler/http"
	"github.com/skellio/hr-backend-go/internal/pkg/database"
	"github.com/skellio/hr-backend-go/internal/pkg/identity"
	"github.com/skellio/hr-backend-go/internal/pkg/jwt"
	"github.com/skellio/hr-backend-go/internal/pkg/oauth"
	"github.com/skellio/hr-backend-go/internal/pkg/payment"
	"github.com/skellio/hr-backend-go/internal/repository/postgresql"
	attendanceService "github.com/skellio/hr-backend-go/internal/service/attendance"
	authService "github.com/skellio/hr-backend-go/internal/service/auth"
	billingService "github.com/skellio/hr-backend-go/internal/service/billing"
	companyService "github.com/skellio/hr-backend-go/internal/service/company"
	dashboardService "github.com/skellio/hr-backend-go/internal/service/dashboard"
	employeeService "github.com/skellio/hr-backend-go/internal/service/employee"
	leaveService "github.com/skellio/hr-backend-go/internal/service/leave"
	payrollService "github.com/skellio/hr-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logLevel := slog.LevelInfo
	if cfg.App.LogLevel == "debug" {
		logLevel = slog.LevelDebug
	}
	logFormat := httplog.SchemaECS.Concise(cfg.App.Env == "development")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       logLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "skellio-hr"),
		slog.String("env", cfg.App.Env),
	)

	dsn := cfg.DatabaseURL()
	if err := database.Migrate(dsn, cfg.Database.MigrationsPath); err != nil {
		logger.Error("failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	companyRepo := postgresql.NewCompanyRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	userRepo := postgresql.NewUserRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	identityClient := identity.NewClient(cfg.Identity.APIURL, cfg.Identity.APIKey)
	paymentClient := payment.NewClient(cfg.Payment.APIURL, cfg.Payment.APIKey, cfg.Payment.APISecret, cfg.Payment.MerchantCode, cfg.App.BaseURL)
	webhookVerifier := payment.NewWebhookVerifier(cfg.Payment.WebhookToken)

	if !cfg.PaymentConfigured() {
		logger.Warn("payment processor credentials absent, checkout sessions will be mocked")
	}

	billingSvc := billingService.NewBillingService(companyRepo, employeeRepo, paymentClient, logger)
	companySvc := companyService.NewCompanyService(db, companyRepo, logger)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, billingSvc, identityClient, logger)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, logger)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo, logger)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo, logger)
	authSvc := authService.NewAuthService(userRepo, employeeRepo, identityClient, jwtService, logger)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc, jwtService, googleService),
		Company:    appHTTP.NewCompanyHandler(companySvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Billing:    appHTTP.NewBillingHandler(billingSvc, webhookVerifier),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
	}

	router := appHTTP.NewRouter(logger, jwtService, cfg.App.FrontendURL, handlers)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("server listening", slog.String("addr", addr))
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("server error", slog.Any("error", err))
		os.Exit(1)
	}
}
