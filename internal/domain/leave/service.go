package leave

import "context"

type LeaveService interface {
	Create(ctx context.Context, companyID string, req CreateLeaveRequest) (LeaveResponse, error)
	GetByID(ctx context.Context, companyID, id string) (LeaveResponse, error)
	ListByCompany(ctx context.Context, companyID string) ([]LeaveResponse, error)
	ListByEmployee(ctx context.Context, companyID, employeeID string) ([]LeaveResponse, error)
	// Transition moves a pending request to approved or rejected.
	// Processed requests are final.
	Transition(ctx context.Context, companyID, id string, req TransitionRequest) (LeaveResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}
