package leave

import (
	"context"
	"log/slog"
	"time"

	"github.com/skellio/hr-backend-go/internal/domain/employee"
	"github.com/skellio/hr-backend-go/internal/domain/leave"
)

type LeaveServiceImpl struct {
	leaveRepo    leave.LeaveRepository
	employeeRepo employee.EmployeeRepository
	logger       *slog.Logger
}

func NewLeaveService(
	leaveRepo leave.LeaveRepository,
	employeeRepo employee.EmployeeRepository,
	logger *slog.Logger,
) *LeaveServiceImpl {
	return &LeaveServiceImpl{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

func (s *LeaveServiceImpl) employeeInCompany(ctx context.Context, companyID, employeeID string) error {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return err
	}
	if emp.CompanyID != companyID {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// Create implements leave.LeaveService.
// Days is always derived server-side from the inclusive date span.
func (s *LeaveServiceImpl) Create(ctx context.Context, companyID string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}
	if err := s.employeeInCompany(ctx, companyID, req.EmployeeID); err != nil {
		return leave.LeaveResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	created, err := s.leaveRepo.Create(ctx, leave.Leave{
		EmployeeID: req.EmployeeID,
		Type:       leave.Type(req.LeaveType),
		StartDate:  start,
		EndDate:    end,
		Days:       leave.DayCount(start, end),
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return created.ToResponse(), nil
}

// GetByID implements leave.LeaveService.
func (s *LeaveServiceImpl) GetByID(ctx context.Context, companyID, id string) (leave.LeaveResponse, error) {
	found, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if err := s.employeeInCompany(ctx, companyID, found.EmployeeID); err != nil {
		return leave.LeaveResponse{}, leave.ErrLeaveNotFound
	}
	return found.ToResponse(), nil
}

// ListByCompany implements leave.LeaveService.
func (s *LeaveServiceImpl) ListByCompany(ctx context.Context, companyID string) ([]leave.LeaveResponse, error) {
	leaves, err := s.leaveRepo.ListByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	responses := make([]leave.LeaveResponse, 0, len(leaves))
	for i := range leaves {
		responses = append(responses, leaves[i].ToResponse())
	}
	return responses, nil
}

// ListByEmployee implements leave.LeaveService.
func (s *LeaveServiceImpl) ListByEmployee(ctx context.Context, companyID, employeeID string) ([]leave.LeaveResponse, error) {
	if err := s.employeeInCompany(ctx, companyID, employeeID); err != nil {
		return nil, err
	}
	leaves, err := s.leaveRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	responses := make([]leave.LeaveResponse, 0, len(leaves))
	for i := range leaves {
		responses = append(responses, leaves[i].ToResponse())
	}
	return responses, nil
}

// Transition implements leave.LeaveService.
func (s *LeaveServiceImpl) Transition(ctx context.Context, companyID, id string, req leave.TransitionRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	existing, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if err := s.employeeInCompany(ctx, companyID, existing.EmployeeID); err != nil {
		return leave.LeaveResponse{}, leave.ErrLeaveNotFound
	}
	if existing.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrAlreadyProcessed
	}

	existing.Status = leave.Status(req.Status)
	now := time.Now()
	if existing.Status == leave.StatusApproved {
		existing.ApprovedBy = req.ApprovedBy
		existing.ApprovedAt = &now
		existing.RejectionReason = nil
	} else {
		existing.RejectionReason = req.RejectionReason
		existing.ApprovedBy = nil
		existing.ApprovedAt = nil
	}

	updated, err := s.leaveRepo.UpdateStatus(ctx, existing)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	s.logger.InfoContext(ctx, "leave request processed",
		slog.String("leave_id", updated.ID),
		slog.String("status", string(updated.Status)),
	)

	return updated.ToResponse(), nil
}

// Delete implements leave.LeaveService.
// Only pending requests can be withdrawn.
func (s *LeaveServiceImpl) Delete(ctx context.Context, companyID, id string) error {
	existing, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.employeeInCompany(ctx, companyID, existing.EmployeeID); err != nil {
		return leave.ErrLeaveNotFound
	}
	if existing.Status != leave.StatusPending {
		return leave.ErrAlreadyProcessed
	}
	return s.leaveRepo.Delete(ctx, id)
}
