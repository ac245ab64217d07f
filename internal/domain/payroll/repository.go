package payroll

import "context"

// PayrollRepository handles payroll data operations
type PayrollRepository interface {
	// Create inserts a new payroll record
	Create(ctx context.Context, p Payroll) (Payroll, error)

	// GetByID retrieves a payroll record by its ID
	GetByID(ctx context.Context, id string) (Payroll, error)

	// ExistsByPeriod checks for an existing (employee, month, year) record
	ExistsByPeriod(ctx context.Context, employeeID string, month, year int) (bool, error)

	// ListByCompanyAndPeriod retrieves payrolls for a company's employees
	// in a given month/year, newest first
	ListByCompanyAndPeriod(ctx context.Context, companyID string, month, year int) ([]Payroll, error)

	// ListByEmployee retrieves payroll records for one employee
	ListByEmployee(ctx context.Context, employeeID string) ([]Payroll, error)

	// UpdateStatus updates the payment status of a record
	UpdateStatus(ctx context.Context, p Payroll) (Payroll, error)
}
