package payroll

import "errors"

var (
	ErrPayrollNotFound = errors.New("payroll record not found")
	ErrPeriodExists    = errors.New("payroll already exists for this period")
	ErrInvalidPeriod   = errors.New("month must be 1-12 and year must be positive")
)
