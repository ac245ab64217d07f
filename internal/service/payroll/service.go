package payroll

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/skellio/hr-backend-go/internal/domain/employee"
	"github.com/skellio/hr-backend-go/internal/domain/payroll"
)

type PayrollServiceImpl struct {
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
	logger       *slog.Logger
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	logger *slog.Logger,
) *PayrollServiceImpl {
	return &PayrollServiceImpl{
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

func orZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func (s *PayrollServiceImpl) generateOne(ctx context.Context, companyID string, rec payroll.GeneratePayrollRecord) (payroll.Payroll, error) {
	if err := rec.Validate(); err != nil {
		return payroll.Payroll{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, rec.EmployeeID)
	if err != nil {
		return payroll.Payroll{}, err
	}
	if emp.CompanyID != companyID {
		return payroll.Payroll{}, employee.ErrEmployeeNotFound
	}

	exists, err := s.payrollRepo.ExistsByPeriod(ctx, rec.EmployeeID, rec.Month, rec.Year)
	if err != nil {
		return payroll.Payroll{}, err
	}
	if exists {
		return payroll.Payroll{}, payroll.ErrPeriodExists
	}

	allowances := orZero(rec.Allowances)
	deductions := orZero(rec.Deductions)
	bonus := orZero(rec.Bonus)

	return s.payrollRepo.Create(ctx, payroll.Payroll{
		EmployeeID:  rec.EmployeeID,
		Month:       rec.Month,
		Year:        rec.Year,
		BaseSalary:  rec.BasicSalary,
		Allowances:  allowances,
		Deductions:  deductions,
		Bonus:       bonus,
		TotalSalary: payroll.Total(rec.BasicSalary, allowances, bonus, deductions),
		Status:      payroll.StatusPending,
	})
}

// Generate implements payroll.PayrollService.
// Batch mode keeps going past individual failures and reports them per
// employee.
func (s *PayrollServiceImpl) Generate(ctx context.Context, companyID string, req payroll.GeneratePayrollRequest) (payroll.GeneratePayrollResponse, error) {
	if !req.IsBatch() {
		created, err := s.generateOne(ctx, companyID, req.GeneratePayrollRecord)
		if err != nil {
			return payroll.GeneratePayrollResponse{}, err
		}
		return payroll.GeneratePayrollResponse{
			Created: []payroll.PayrollResponse{created.ToResponse()},
		}, nil
	}

	var resp payroll.GeneratePayrollResponse
	for _, rec := range req.PayrollRecords {
		created, err := s.generateOne(ctx, companyID, rec)
		if err != nil {
			resp.Errors = append(resp.Errors, payroll.RecordError{
				EmployeeID: rec.EmployeeID,
				Error:      err.Error(),
			})
			continue
		}
		resp.Created = append(resp.Created, created.ToResponse())
	}

	s.logger.InfoContext(ctx, "payroll batch generated",
		slog.String("company_id", companyID),
		slog.Int("created", len(resp.Created)),
		slog.Int("failed", len(resp.Errors)),
	)

	return resp, nil
}

// GetByID implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetByID(ctx context.Context, companyID, id string) (payroll.PayrollResponse, error) {
	found, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, found.EmployeeID)
	if err != nil || emp.CompanyID != companyID {
		return payroll.PayrollResponse{}, payroll.ErrPayrollNotFound
	}

	return found.ToResponse(), nil
}

// ListByCompanyAndPeriod implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListByCompanyAndPeriod(ctx context.Context, companyID string, month, year int) ([]payroll.PayrollResponse, error) {
	if month < 1 || month > 12 || year < 1 {
		return nil, payroll.ErrInvalidPeriod
	}

	payrolls, err := s.payrollRepo.ListByCompanyAndPeriod(ctx, companyID, month, year)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PayrollResponse, 0, len(payrolls))
	for i := range payrolls {
		responses = append(responses, payrolls[i].ToResponse())
	}
	return responses, nil
}

// ListByEmployee implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListByEmployee(ctx context.Context, companyID, employeeID string) ([]payroll.PayrollResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if emp.CompanyID != companyID {
		return nil, employee.ErrEmployeeNotFound
	}

	payrolls, err := s.payrollRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PayrollResponse, 0, len(payrolls))
	for i := range payrolls {
		responses = append(responses, payrolls[i].ToResponse())
	}
	return responses, nil
}

// UpdateStatus implements payroll.PayrollService.
func (s *PayrollServiceImpl) UpdateStatus(ctx context.Context, companyID, id string, req payroll.UpdatePayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	existing, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, existing.EmployeeID)
	if err != nil || emp.CompanyID != companyID {
		return payroll.PayrollResponse{}, payroll.ErrPayrollNotFound
	}

	existing.Status = payroll.Status(req.Status)
	if existing.Status == payroll.StatusPaid {
		now := time.Now()
		existing.PaidAt = &now
	} else {
		existing.PaidAt = nil
	}

	updated, err := s.payrollRepo.UpdateStatus(ctx, existing)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return updated.ToResponse(), nil
}
