package leave

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skellio/hr-backend-go/internal/domain/employee"
	"github.com/skellio/hr-backend-go/internal/domain/leave"
	"github.com/skellio/hr-backend-go/internal/pkg/validator"
)

type memLeaveRepo struct {
	leaves map[string]leave.Leave
}

func newMemLeaveRepo() *memLeaveRepo {
	return &memLeaveRepo{leaves: make(map[string]leave.Leave)}
}

func (r *memLeaveRepo) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	l.ID = uuid.NewString()
	r.leaves[l.ID] = l
	return l, nil
}

func (r *memLeaveRepo) GetByID(ctx context.Context, id string) (leave.Leave, error) {
	l, ok := r.leaves[id]
	if !ok {
		return leave.Leave{}, leave.ErrLeaveNotFound
	}
	return l, nil
}

func (r *memLeaveRepo) ListByCompanyID(ctx context.Context, companyID string) ([]leave.Leave, error) {
	var out []leave.Leave
	for _, l := range r.leaves {
		out = append(out, l)
	}
	return out, nil
}

func (r *memLeaveRepo) ListByEmployee(ctx context.Context, employeeID string) ([]leave.Leave, error) {
	var out []leave.Leave
	for _, l := range r.leaves {
		if l.EmployeeID == employeeID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *memLeaveRepo) UpdateStatus(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	stored, ok := r.leaves[l.ID]
	if !ok || stored.Status != leave.StatusPending {
		// Mirrors the conditional UPDATE in the SQL repository.
		return leave.Leave{}, leave.ErrAlreadyProcessed
	}
	r.leaves[l.ID] = l
	return l, nil
}

func (r *memLeaveRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.leaves[id]; !ok {
		return leave.ErrLeaveNotFound
	}
	delete(r.leaves, id)
	return nil
}

// stubEmployeeRepo resolves every employee to the one company it holds.
type stubEmployeeRepo struct {
	employee.EmployeeRepository

	companyID string
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{ID: id, CompanyID: s.companyID, Status: employee.StatusActive}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(repo *memLeaveRepo) *LeaveServiceImpl {
	return NewLeaveService(repo, &stubEmployeeRepo{companyID: "company-1"}, testLogger())
}

func createLeave(t *testing.T, svc *LeaveServiceImpl) leave.LeaveResponse {
	t.Helper()
	resp, err := svc.Create(context.Background(), "company-1", leave.CreateLeaveRequest{
		EmployeeID: "employee-1",
		LeaveType:  "vacation",
		StartDate:  "2025-06-02",
		EndDate:    "2025-06-06",
		Reason:     "Family trip",
	})
	require.NoError(t, err)
	return resp
}

func TestLeaveService_Create_DerivesDaysServerSide(t *testing.T) {
	svc := newTestService(newMemLeaveRepo())

	resp := createLeave(t, svc)

	assert.Equal(t, 5, resp.Days)
	assert.Equal(t, "pending", resp.Status)
}

func TestLeaveService_Create_SingleDay(t *testing.T) {
	svc := newTestService(newMemLeaveRepo())

	resp, err := svc.Create(context.Background(), "company-1", leave.CreateLeaveRequest{
		EmployeeID: "employee-1",
		LeaveType:  "sick",
		StartDate:  "2025-06-02",
		EndDate:    "2025-06-02",
		Reason:     "Flu",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Days)
}

func TestLeaveService_Create_EndBeforeStart(t *testing.T) {
	svc := newTestService(newMemLeaveRepo())

	_, err := svc.Create(context.Background(), "company-1", leave.CreateLeaveRequest{
		EmployeeID: "employee-1",
		LeaveType:  "vacation",
		StartDate:  "2025-06-06",
		EndDate:    "2025-06-02",
		Reason:     "Backwards",
	})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
}

func TestLeaveService_Transition_Approve(t *testing.T) {
	repo := newMemLeaveRepo()
	svc := newTestService(repo)
	created := createLeave(t, svc)

	approver := "hr-user-1"
	resp, err := svc.Transition(context.Background(), "company-1", created.ID, leave.TransitionRequest{
		Status:     string(leave.StatusApproved),
		ApprovedBy: &approver,
	})

	require.NoError(t, err)
	assert.Equal(t, "approved", resp.Status)
	require.NotNil(t, resp.ApprovedBy)
	assert.Equal(t, approver, *resp.ApprovedBy)
	assert.NotNil(t, resp.ApprovedAt)
	assert.Nil(t, resp.RejectionReason)
}

func TestLeaveService_Transition_RejectRequiresReason(t *testing.T) {
	repo := newMemLeaveRepo()
	svc := newTestService(repo)
	created := createLeave(t, svc)

	_, err := svc.Transition(context.Background(), "company-1", created.ID, leave.TransitionRequest{
		Status: string(leave.StatusRejected),
	})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
}

func TestLeaveService_Transition_RejectWithReason(t *testing.T) {
	repo := newMemLeaveRepo()
	svc := newTestService(repo)
	created := createLeave(t, svc)

	reason := "Blackout period"
	resp, err := svc.Transition(context.Background(), "company-1", created.ID, leave.TransitionRequest{
		Status:          string(leave.StatusRejected),
		RejectionReason: &reason,
	})

	require.NoError(t, err)
	assert.Equal(t, "rejected", resp.Status)
	require.NotNil(t, resp.RejectionReason)
	assert.Equal(t, reason, *resp.RejectionReason)
	assert.Nil(t, resp.ApprovedBy)
	assert.Nil(t, resp.ApprovedAt)
}

func TestLeaveService_Transition_IsOneWay(t *testing.T) {
	repo := newMemLeaveRepo()
	svc := newTestService(repo)
	created := createLeave(t, svc)

	approver := "hr-user-1"
	_, err := svc.Transition(context.Background(), "company-1", created.ID, leave.TransitionRequest{
		Status:     string(leave.StatusApproved),
		ApprovedBy: &approver,
	})
	require.NoError(t, err)

	// An approved request can never be reprocessed.
	reason := "Changed my mind"
	_, err = svc.Transition(context.Background(), "company-1", created.ID, leave.TransitionRequest{
		Status:          string(leave.StatusRejected),
		RejectionReason: &reason,
	})
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
}

func TestLeaveService_Transition_BackToPendingRejected(t *testing.T) {
	repo := newMemLeaveRepo()
	svc := newTestService(repo)
	created := createLeave(t, svc)

	_, err := svc.Transition(context.Background(), "company-1", created.ID, leave.TransitionRequest{
		Status: string(leave.StatusPending),
	})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
}

func TestLeaveService_Delete_OnlyPending(t *testing.T) {
	repo := newMemLeaveRepo()
	svc := newTestService(repo)
	created := createLeave(t, svc)

	approver := "hr-user-1"
	_, err := svc.Transition(context.Background(), "company-1", created.ID, leave.TransitionRequest{
		Status:     string(leave.StatusApproved),
		ApprovedBy: &approver,
	})
	require.NoError(t, err)

	err = svc.Delete(context.Background(), "company-1", created.ID)
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
}

func TestLeaveService_Delete_PendingSucceeds(t *testing.T) {
	repo := newMemLeaveRepo()
	svc := newTestService(repo)
	created := createLeave(t, svc)

	require.NoError(t, svc.Delete(context.Background(), "company-1", created.ID))

	_, err := svc.GetByID(context.Background(), "company-1", created.ID)
	assert.ErrorIs(t, err, leave.ErrLeaveNotFound)
}
