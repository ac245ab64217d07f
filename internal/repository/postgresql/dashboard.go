package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/skellio/hr-backend-go/internal/domain/dashboard"
	"github.com/skellio/hr-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// Summary implements dashboard.DashboardRepository.
// All aggregates are computed in one round trip.
func (r *dashboardRepositoryImpl) Summary(ctx context.Context, companyID string, now time.Time) (dashboard.Summary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM employees WHERE company_id = $1) AS total_employees,
			(SELECT COUNT(*) FROM employees WHERE company_id = $1 AND status = 'active') AS active_employees,
			(SELECT COUNT(*) FROM leaves l JOIN employees e ON e.id = l.employee_id
				WHERE e.company_id = $1 AND l.status = 'pending') AS pending_leaves,
			(SELECT COUNT(*) FROM attendance a JOIN employees e ON e.id = a.employee_id
				WHERE e.company_id = $1 AND a.date = $2 AND a.status IN ('present', 'late', 'half_day')) AS marked_today,
			(SELECT COALESCE(SUM(p.total_salary), 0) FROM payrolls p JOIN employees e ON e.id = p.employee_id
				WHERE e.company_id = $1 AND p.month = $3 AND p.year = $4) AS month_payroll_total
	`

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var (
		summary     dashboard.Summary
		markedToday int
		total       decimal.Decimal
	)
	err := q.QueryRow(ctx, query, companyID, today, int(now.Month()), now.Year()).Scan(
		&summary.TotalEmployees,
		&summary.ActiveEmployees,
		&summary.PendingLeaves,
		&markedToday,
		&total,
	)
	if err != nil {
		return dashboard.Summary{}, fmt.Errorf("failed to compute dashboard summary for company %s: %w", companyID, err)
	}

	if summary.ActiveEmployees > 0 {
		summary.TodayAttendanceRate = float64(markedToday) / float64(summary.ActiveEmployees) * 100
	}
	summary.MonthPayrollTotal = total

	return summary, nil
}
