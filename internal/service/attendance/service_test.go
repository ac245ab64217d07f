package attendance

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skellio/hr-backend-go/internal/domain/attendance"
	"github.com/skellio/hr-backend-go/internal/domain/employee"
	"github.com/skellio/hr-backend-go/internal/pkg/validator"
)

type dateKey struct {
	employeeID string
	date       string
}

type memAttendanceRepo struct {
	records map[string]attendance.Attendance
	marked  map[dateKey]bool
}

func newMemAttendanceRepo() *memAttendanceRepo {
	return &memAttendanceRepo{
		records: make(map[string]attendance.Attendance),
		marked:  make(map[dateKey]bool),
	}
}

func (r *memAttendanceRepo) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	key := dateKey{a.EmployeeID, a.Date.Format("2006-01-02")}
	if r.marked[key] {
		return attendance.Attendance{}, attendance.ErrAlreadyMarked
	}
	a.ID = uuid.NewString()
	r.records[a.ID] = a
	r.marked[key] = true
	return a, nil
}

func (r *memAttendanceRepo) ExistsByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	return r.marked[dateKey{employeeID, date.Format("2006-01-02")}], nil
}

func (r *memAttendanceRepo) ListByCompanyAndDate(ctx context.Context, companyID string, date time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, a := range r.records {
		if a.Date.Equal(date) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memAttendanceRepo) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, a := range r.records {
		if a.EmployeeID == employeeID {
			out = append(out, a)
		}
	}
	return out, nil
}

type stubEmployeeRepo struct {
	employee.EmployeeRepository

	employees map[string]employee.Employee
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := s.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(repo *memAttendanceRepo) *AttendanceServiceImpl {
	employees := &stubEmployeeRepo{employees: map[string]employee.Employee{
		"employee-1": {ID: "employee-1", CompanyID: "company-1", Status: employee.StatusActive},
		"employee-2": {ID: "employee-2", CompanyID: "company-1", Status: employee.StatusInactive},
	}}
	return NewAttendanceService(repo, employees, testLogger())
}

func markRequest(employeeID string) attendance.MarkAttendanceRequest {
	return attendance.MarkAttendanceRequest{
		EmployeeID: employeeID,
		Date:       "2025-03-10",
		CheckIn:    "2025-03-10T09:00:00Z",
		Status:     string(attendance.StatusPresent),
	}
}

func TestAttendanceService_Mark(t *testing.T) {
	svc := newTestService(newMemAttendanceRepo())

	resp, err := svc.Mark(context.Background(), "company-1", markRequest("employee-1"))

	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", resp.Date)
	assert.Equal(t, "present", resp.Status)
}

func TestAttendanceService_Mark_TwicePerDayRejected(t *testing.T) {
	svc := newTestService(newMemAttendanceRepo())

	_, err := svc.Mark(context.Background(), "company-1", markRequest("employee-1"))
	require.NoError(t, err)

	_, err = svc.Mark(context.Background(), "company-1", markRequest("employee-1"))
	assert.ErrorIs(t, err, attendance.ErrAlreadyMarked)
}

func TestAttendanceService_Mark_InactiveEmployeeRejected(t *testing.T) {
	svc := newTestService(newMemAttendanceRepo())

	_, err := svc.Mark(context.Background(), "company-1", markRequest("employee-2"))

	assert.ErrorIs(t, err, employee.ErrEmployeeInactive)
}

func TestAttendanceService_Mark_EmployeeOutsideCompany(t *testing.T) {
	svc := newTestService(newMemAttendanceRepo())

	_, err := svc.Mark(context.Background(), "company-other", markRequest("employee-1"))

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestAttendanceService_Mark_InvalidStatus(t *testing.T) {
	svc := newTestService(newMemAttendanceRepo())

	req := markRequest("employee-1")
	req.Status = "vacationing"
	_, err := svc.Mark(context.Background(), "company-1", req)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
}

func TestAttendanceService_ListByCompanyAndDate(t *testing.T) {
	repo := newMemAttendanceRepo()
	svc := newTestService(repo)

	_, err := svc.Mark(context.Background(), "company-1", markRequest("employee-1"))
	require.NoError(t, err)

	records, err := svc.ListByCompanyAndDate(context.Background(), "company-1", "2025-03-10")
	require.NoError(t, err)
	assert.Len(t, records, 1)

	empty, err := svc.ListByCompanyAndDate(context.Background(), "company-1", "2025-03-11")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestAttendanceService_ListByCompanyAndDate_BadDate(t *testing.T) {
	svc := newTestService(newMemAttendanceRepo())

	_, err := svc.ListByCompanyAndDate(context.Background(), "company-1", "10-03-2025")

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
}
