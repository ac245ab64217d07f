package attendance

import (
	"context"
	"time"
)

// AttendanceRepository handles attendance data operations
type AttendanceRepository interface {
	// Create inserts a new attendance record
	Create(ctx context.Context, a Attendance) (Attendance, error)

	// ExistsByEmployeeAndDate checks whether a record exists for the
	// employee on the given calendar date
	ExistsByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (bool, error)

	// ListByCompanyAndDate retrieves attendance for a company on a date
	ListByCompanyAndDate(ctx context.Context, companyID string, date time.Time) ([]Attendance, error)

	// ListByEmployee retrieves all attendance for one employee, newest first
	ListByEmployee(ctx context.Context, employeeID string) ([]Attendance, error)
}
