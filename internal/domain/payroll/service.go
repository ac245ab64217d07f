package payroll

import "context"

type PayrollService interface {
	// Generate creates payroll records. Batch requests report per
	// record outcomes instead of failing as a whole.
	Generate(ctx context.Context, companyID string, req GeneratePayrollRequest) (GeneratePayrollResponse, error)
	GetByID(ctx context.Context, companyID, id string) (PayrollResponse, error)
	ListByCompanyAndPeriod(ctx context.Context, companyID string, month, year int) ([]PayrollResponse, error)
	ListByEmployee(ctx context.Context, companyID, employeeID string) ([]PayrollResponse, error)
	UpdateStatus(ctx context.Context, companyID, id string, req UpdatePayrollRequest) (PayrollResponse, error)
}
