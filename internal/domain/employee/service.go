package employee

import "context"

type EmployeeService interface {
	// Create runs the subscription gate before any write. A denial is
	// returned as a *billing.PaymentRequiredError and leaves no record.
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetByID(ctx context.Context, companyID, id string) (EmployeeResponse, error)
	ListByCompany(ctx context.Context, companyID string) ([]EmployeeResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	// SetupAccount provisions an identity-provider login for an
	// employee and links the uid to the record.
	SetupAccount(ctx context.Context, companyID string, req SetupAccountRequest) (EmployeeResponse, string, error)
	Delete(ctx context.Context, companyID, id string) error
}
