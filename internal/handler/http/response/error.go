package response

import (
	"errors"
	"net/http"

	"github.com/skellio/hr-backend-go/internal/domain/attendance"
	"github.com/skellio/hr-backend-go/internal/domain/auth"
	"github.com/skellio/hr-backend-go/internal/domain/billing"
	"github.com/skellio/hr-backend-go/internal/domain/company"
	"github.com/skellio/hr-backend-go/internal/domain/employee"
	"github.com/skellio/hr-backend-go/internal/domain/leave"
	"github.com/skellio/hr-backend-go/internal/domain/payroll"
	"github.com/skellio/hr-backend-go/internal/domain/user"
	"github.com/skellio/hr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	if denial, ok := billing.AsPaymentRequired(err); ok {
		PaymentRequired(w, denial.Decision)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAccountNotFound):
		NotFound(w, "Account not found")
	case errors.Is(err, auth.ErrIdentityFailed):
		InternalServerError(w, "Identity provider is unavailable")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserExists):
		BadRequest(w, "Account already registered", nil)

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrCompanyNameExists):
		BadRequest(w, "Company name already registered", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		BadRequest(w, "Employee ID already exists in this company", nil)
	case errors.Is(err, employee.ErrEmployeeInactive):
		BadRequest(w, "Employee is not active", nil)
	case errors.Is(err, employee.ErrAccountLinked):
		BadRequest(w, "Employee already has an account", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyMarked):
		BadRequest(w, "Attendance already marked for this date", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		BadRequest(w, "Leave request already processed", nil)
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "Invalid leave date range", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPeriodExists):
		BadRequest(w, "Payroll already generated for this period", nil)
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)

	// Billing domain errors
	case errors.Is(err, billing.ErrPaymentNotRequired):
		BadRequest(w, "Payment is not required for 10 or fewer employees", nil)
	case errors.Is(err, billing.ErrInvalidWebhookSignature):
		Unauthorized(w, "Invalid webhook signature")
	case errors.Is(err, billing.ErrMissingCompanyID):
		BadRequest(w, "Webhook data is missing company id", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
