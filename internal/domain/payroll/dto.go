package payroll

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/skellio/hr-backend-go/internal/pkg/validator"
)

// GeneratePayrollRecord is one record in a payroll generation call.
type GeneratePayrollRecord struct {
	EmployeeID  string           `json:"employee_id"`
	Month       int              `json:"month"`
	Year        int              `json:"year"`
	BasicSalary decimal.Decimal  `json:"basic_salary"`
	Allowances  *decimal.Decimal `json:"allowances,omitempty"`
	Deductions  *decimal.Decimal `json:"deductions,omitempty"`
	Bonus       *decimal.Decimal `json:"bonus,omitempty"`
}

func (r *GeneratePayrollRecord) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be between 1 and 12"})
	}
	if r.Year < 1 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year is required"})
	}
	if r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "basic_salary must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// GeneratePayrollRequest accepts a single record or a batch. Exactly
// one of the two forms is expected.
type GeneratePayrollRequest struct {
	GeneratePayrollRecord
	PayrollRecords []GeneratePayrollRecord `json:"payroll_records,omitempty"`
}

// IsBatch reports whether the request carries a batch body.
func (r *GeneratePayrollRequest) IsBatch() bool {
	return len(r.PayrollRecords) > 0
}

// UpdatePayrollRequest updates the payment status of a record.
type UpdatePayrollRequest struct {
	Status string `json:"status"`
}

func (r *UpdatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if !IsValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be pending, paid or cancelled"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PayrollResponse represents a payroll record in API responses.
type PayrollResponse struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employee_id"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
	BaseSalary  decimal.Decimal `json:"base_salary"`
	Allowances  decimal.Decimal `json:"allowances"`
	Deductions  decimal.Decimal `json:"deductions"`
	Bonus       decimal.Decimal `json:"bonus"`
	TotalSalary decimal.Decimal `json:"total_salary"`
	Status      string          `json:"status"`
	PaidAt      *string         `json:"paid_at,omitempty"`
}

// RecordError is a per-employee failure inside a batch generation.
type RecordError struct {
	EmployeeID string `json:"employee_id"`
	Error      string `json:"error"`
}

// GeneratePayrollResponse is the partial-success report for a batch.
type GeneratePayrollResponse struct {
	Created []PayrollResponse `json:"payrolls"`
	Errors  []RecordError     `json:"errors,omitempty"`
}

// ToResponse converts a Payroll entity to PayrollResponse.
func (p *Payroll) ToResponse() PayrollResponse {
	var paidAt *string
	if p.PaidAt != nil {
		s := p.PaidAt.Format(time.RFC3339)
		paidAt = &s
	}

	return PayrollResponse{
		ID:          p.ID,
		EmployeeID:  p.EmployeeID,
		Month:       p.Month,
		Year:        p.Year,
		BaseSalary:  p.BaseSalary,
		Allowances:  p.Allowances,
		Deductions:  p.Deductions,
		Bonus:       p.Bonus,
		TotalSalary: p.TotalSalary,
		Status:      string(p.Status),
		PaidAt:      paidAt,
	}
}
