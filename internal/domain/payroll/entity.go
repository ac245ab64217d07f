package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payroll struct {
	ID          string
	EmployeeID  string
	Month       int
	Year        int
	BaseSalary  decimal.Decimal
	Allowances  decimal.Decimal
	Deductions  decimal.Decimal
	Bonus       decimal.Decimal
	TotalSalary decimal.Decimal
	Status      Status
	PaidAt      *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
)

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusPaid, StatusCancelled:
		return true
	}
	return false
}

// Total computes base + allowances + bonus - deductions.
func Total(base, allowances, bonus, deductions decimal.Decimal) decimal.Decimal {
	return base.Add(allowances).Add(bonus).Sub(deductions)
}
