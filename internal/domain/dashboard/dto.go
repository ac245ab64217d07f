package dashboard

import "github.com/shopspring/decimal"

// Summary is the per-company dashboard snapshot.
type Summary struct {
	TotalEmployees      int             `json:"total_employees"`
	ActiveEmployees     int             `json:"active_employees"`
	PendingLeaves       int             `json:"pending_leaves"`
	TodayAttendanceRate float64         `json:"today_attendance_rate"`
	MonthPayrollTotal   decimal.Decimal `json:"month_payroll_total"`
}
