package employee

import "context"

// EmployeeRepository handles employee data operations
type EmployeeRepository interface {
	// Create creates a new employee
	Create(ctx context.Context, e Employee) (Employee, error)

	// GetByID retrieves an employee by its ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByEmail retrieves an employee by email
	GetByEmail(ctx context.Context, email string) (Employee, error)

	// GetByEmailAndUID retrieves an employee by email and identity link
	GetByEmailAndUID(ctx context.Context, email, externalUID string) (Employee, error)

	// ListByCompanyID retrieves all employees for a company, newest first
	ListByCompanyID(ctx context.Context, companyID string) ([]Employee, error)

	// CountActiveByCompanyID counts employees with status active.
	// The subscription gate depends on this count; it is always computed
	// from the employees table, never cached on the company.
	CountActiveByCompanyID(ctx context.Context, companyID string) (int, error)

	// ExistsByCode checks whether an employee code is taken within a company
	ExistsByCode(ctx context.Context, companyID, employeeCode string) (bool, error)

	// Update updates an employee record
	Update(ctx context.Context, e Employee) (Employee, error)

	// LinkIdentity stores the external identity uid and sync snapshot
	LinkIdentity(ctx context.Context, id string, externalUID, syncedEmail string) error

	// MarkPasswordChanged flips the first-login password flag
	MarkPasswordChanged(ctx context.Context, id string) error

	// Delete removes an employee record
	Delete(ctx context.Context, id string) error
}
