package leave

import "context"

// LeaveRepository handles leave request data operations
type LeaveRepository interface {
	// Create inserts a new leave request
	Create(ctx context.Context, l Leave) (Leave, error)

	// GetByID retrieves a leave request by its ID
	GetByID(ctx context.Context, id string) (Leave, error)

	// ListByCompanyID retrieves leave requests for a company, newest first
	ListByCompanyID(ctx context.Context, companyID string) ([]Leave, error)

	// ListByEmployee retrieves leave requests for one employee, newest first
	ListByEmployee(ctx context.Context, employeeID string) ([]Leave, error)

	// UpdateStatus transitions a leave request out of pending.
	// The update is conditional on the current status still being
	// pending so concurrent approvals cannot double-process a request.
	UpdateStatus(ctx context.Context, l Leave) (Leave, error)

	// Delete removes a leave request
	Delete(ctx context.Context, id string) error
}
