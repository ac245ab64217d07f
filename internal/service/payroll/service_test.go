package payroll

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skellio/hr-backend-go/internal/domain/employee"
	"github.com/skellio/hr-backend-go/internal/domain/payroll"
)

type periodKey struct {
	employeeID string
	month      int
	year       int
}

type memPayrollRepo struct {
	payrolls map[string]payroll.Payroll
	periods  map[periodKey]bool
}

func newMemPayrollRepo() *memPayrollRepo {
	return &memPayrollRepo{
		payrolls: make(map[string]payroll.Payroll),
		periods:  make(map[periodKey]bool),
	}
}

func (r *memPayrollRepo) Create(ctx context.Context, p payroll.Payroll) (payroll.Payroll, error) {
	key := periodKey{p.EmployeeID, p.Month, p.Year}
	if r.periods[key] {
		return payroll.Payroll{}, payroll.ErrPeriodExists
	}
	p.ID = uuid.NewString()
	r.payrolls[p.ID] = p
	r.periods[key] = true
	return p, nil
}

func (r *memPayrollRepo) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	p, ok := r.payrolls[id]
	if !ok {
		return payroll.Payroll{}, payroll.ErrPayrollNotFound
	}
	return p, nil
}

func (r *memPayrollRepo) ExistsByPeriod(ctx context.Context, employeeID string, month, year int) (bool, error) {
	return r.periods[periodKey{employeeID, month, year}], nil
}

func (r *memPayrollRepo) ListByCompanyAndPeriod(ctx context.Context, companyID string, month, year int) ([]payroll.Payroll, error) {
	var out []payroll.Payroll
	for _, p := range r.payrolls {
		if p.Month == month && p.Year == year {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memPayrollRepo) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.Payroll, error) {
	var out []payroll.Payroll
	for _, p := range r.payrolls {
		if p.EmployeeID == employeeID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memPayrollRepo) UpdateStatus(ctx context.Context, p payroll.Payroll) (payroll.Payroll, error) {
	if _, ok := r.payrolls[p.ID]; !ok {
		return payroll.Payroll{}, payroll.ErrPayrollNotFound
	}
	r.payrolls[p.ID] = p
	return p, nil
}

// stubEmployeeRepo places known employees in company-1; unknown ids
// miss entirely.
type stubEmployeeRepo struct {
	employee.EmployeeRepository

	known map[string]bool
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if !s.known[id] {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return employee.Employee{ID: id, CompanyID: "company-1", Status: employee.StatusActive}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(repo *memPayrollRepo, employeeIDs ...string) *PayrollServiceImpl {
	known := make(map[string]bool, len(employeeIDs))
	for _, id := range employeeIDs {
		known[id] = true
	}
	return NewPayrollService(repo, &stubEmployeeRepo{known: known}, testLogger())
}

func record(employeeID string) payroll.GeneratePayrollRecord {
	allowances := decimal.RequireFromString("200.00")
	deductions := decimal.RequireFromString("150.00")
	bonus := decimal.RequireFromString("50.00")
	return payroll.GeneratePayrollRecord{
		EmployeeID:  employeeID,
		Month:       3,
		Year:        2025,
		BasicSalary: decimal.RequireFromString("1000.00"),
		Allowances:  &allowances,
		Deductions:  &deductions,
		Bonus:       &bonus,
	}
}

func TestPayrollService_Generate_Single(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemPayrollRepo(), "employee-1")

	resp, err := svc.Generate(ctx, "company-1", payroll.GeneratePayrollRequest{
		GeneratePayrollRecord: record("employee-1"),
	})

	require.NoError(t, err)
	require.Len(t, resp.Created, 1)
	created := resp.Created[0]
	assert.Equal(t, "1100.00", created.TotalSalary.StringFixed(2))
	assert.Equal(t, "pending", created.Status)
}

func TestPayrollService_Generate_MissingComponentsDefaultToZero(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemPayrollRepo(), "employee-1")

	resp, err := svc.Generate(ctx, "company-1", payroll.GeneratePayrollRequest{
		GeneratePayrollRecord: payroll.GeneratePayrollRecord{
			EmployeeID:  "employee-1",
			Month:       3,
			Year:        2025,
			BasicSalary: decimal.RequireFromString("1000.00"),
		},
	})

	require.NoError(t, err)
	require.Len(t, resp.Created, 1)
	assert.Equal(t, "1000.00", resp.Created[0].TotalSalary.StringFixed(2))
}

func TestPayrollService_Generate_DuplicatePeriod(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemPayrollRepo(), "employee-1")

	_, err := svc.Generate(ctx, "company-1", payroll.GeneratePayrollRequest{
		GeneratePayrollRecord: record("employee-1"),
	})
	require.NoError(t, err)

	_, err = svc.Generate(ctx, "company-1", payroll.GeneratePayrollRequest{
		GeneratePayrollRecord: record("employee-1"),
	})
	assert.ErrorIs(t, err, payroll.ErrPeriodExists)
}

func TestPayrollService_Generate_BatchContinuesPastFailures(t *testing.T) {
	ctx := context.Background()
	repo := newMemPayrollRepo()
	svc := newTestService(repo, "employee-1", "employee-2", "employee-3")

	// employee-2 already has a record for the period.
	_, err := svc.Generate(ctx, "company-1", payroll.GeneratePayrollRequest{
		GeneratePayrollRecord: record("employee-2"),
	})
	require.NoError(t, err)

	resp, err := svc.Generate(ctx, "company-1", payroll.GeneratePayrollRequest{
		PayrollRecords: []payroll.GeneratePayrollRecord{
			record("employee-1"),
			record("employee-2"),
			record("employee-3"),
			record("employee-unknown"),
		},
	})

	require.NoError(t, err)
	assert.Len(t, resp.Created, 2)
	require.Len(t, resp.Errors, 2)
	assert.Equal(t, "employee-2", resp.Errors[0].EmployeeID)
	assert.Equal(t, "employee-unknown", resp.Errors[1].EmployeeID)
}

func TestPayrollService_Generate_EmployeeOutsideCompany(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemPayrollRepo())

	_, err := svc.Generate(ctx, "company-1", payroll.GeneratePayrollRequest{
		GeneratePayrollRecord: record("stranger"),
	})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestPayrollService_UpdateStatus_PaidStampsPaidAt(t *testing.T) {
	ctx := context.Background()
	repo := newMemPayrollRepo()
	svc := newTestService(repo, "employee-1")

	resp, err := svc.Generate(ctx, "company-1", payroll.GeneratePayrollRequest{
		GeneratePayrollRecord: record("employee-1"),
	})
	require.NoError(t, err)
	id := resp.Created[0].ID

	updated, err := svc.UpdateStatus(ctx, "company-1", id, payroll.UpdatePayrollRequest{
		Status: string(payroll.StatusPaid),
	})

	require.NoError(t, err)
	assert.Equal(t, "paid", updated.Status)
	assert.NotNil(t, updated.PaidAt)

	// Moving back off paid clears the stamp.
	reverted, err := svc.UpdateStatus(ctx, "company-1", id, payroll.UpdatePayrollRequest{
		Status: string(payroll.StatusCancelled),
	})
	require.NoError(t, err)
	assert.Nil(t, reverted.PaidAt)
}

func TestPayrollService_ListByCompanyAndPeriod_InvalidPeriod(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemPayrollRepo())

	_, err := svc.ListByCompanyAndPeriod(ctx, "company-1", 13, 2025)

	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)
}
