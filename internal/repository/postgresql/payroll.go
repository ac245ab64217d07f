package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/skellio/hr-backend-go/internal/domain/payroll"
	"github.com/skellio/hr-backend-go/internal/pkg/database"
)

const payrollColumns = `
	id, employee_id, month, year, base_salary, allowances, deductions, bonus,
	total_salary, status, paid_at, created_at, updated_at`

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

func scanPayroll(row pgx.Row) (payroll.Payroll, error) {
	var p payroll.Payroll
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.Month, &p.Year, &p.BaseSalary, &p.Allowances,
		&p.Deductions, &p.Bonus, &p.TotalSalary, &p.Status, &p.PaidAt,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// Create implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Create(ctx context.Context, newPayroll payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payrolls (employee_id, month, year, base_salary, allowances, deductions, bonus, total_salary, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING` + payrollColumns

	created, err := scanPayroll(q.QueryRow(ctx, query,
		newPayroll.EmployeeID, newPayroll.Month, newPayroll.Year,
		newPayroll.BaseSalary, newPayroll.Allowances, newPayroll.Deductions, newPayroll.Bonus,
		newPayroll.TotalSalary, newPayroll.Status,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return payroll.Payroll{}, payroll.ErrPeriodExists
		}
		return payroll.Payroll{}, fmt.Errorf("failed to create payroll record: %w", err)
	}
	return created, nil
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + payrollColumns + ` FROM payrolls WHERE id = $1`

	found, err := scanPayroll(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll record with id %s: %w", id, err)
	}
	return found, nil
}

// ExistsByPeriod implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ExistsByPeriod(ctx context.Context, employeeID string, month, year int) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM payrolls WHERE employee_id = $1 AND month = $2 AND year = $3)`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, month, year).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check payroll period for employee %s: %w", employeeID, err)
	}
	return exists, nil
}

// ListByCompanyAndPeriod implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListByCompanyAndPeriod(ctx context.Context, companyID string, month, year int) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.employee_id, p.month, p.year, p.base_salary, p.allowances, p.deductions, p.bonus,
			p.total_salary, p.status, p.paid_at, p.created_at, p.updated_at
		FROM payrolls p
		JOIN employees e ON e.id = p.employee_id
		WHERE e.company_id = $1 AND p.month = $2 AND p.year = $3
		ORDER BY p.created_at DESC
	`

	rows, err := q.Query(ctx, query, companyID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list payrolls for company %s: %w", companyID, err)
	}
	defer rows.Close()

	payrolls := make([]payroll.Payroll, 0)
	for rows.Next() {
		p, err := scanPayroll(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		payrolls = append(payrolls, p)
	}
	return payrolls, rows.Err()
}

// ListByEmployee implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + payrollColumns + ` FROM payrolls WHERE employee_id = $1 ORDER BY year DESC, month DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payrolls for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	payrolls := make([]payroll.Payroll, 0)
	for rows.Next() {
		p, err := scanPayroll(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		payrolls = append(payrolls, p)
	}
	return payrolls, rows.Err()
}

// UpdateStatus implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) UpdateStatus(ctx context.Context, p payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payrolls
		SET status = $1, paid_at = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING` + payrollColumns

	updated, err := scanPayroll(q.QueryRow(ctx, query, p.Status, p.PaidAt, p.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to update payroll record %s: %w", p.ID, err)
	}
	return updated, nil
}
