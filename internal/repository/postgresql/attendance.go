package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/skellio/hr-backend-go/internal/domain/attendance"
	"github.com/skellio/hr-backend-go/internal/pkg/database"
)

const attendanceColumns = `
	id, employee_id, date, check_in, check_out, status, notes, created_at, updated_at`

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.Date, &a.CheckIn, &a.CheckOut, &a.Status, &a.Notes,
		&a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, newRecord attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (employee_id, date, check_in, check_out, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING` + attendanceColumns

	created, err := scanAttendance(q.QueryRow(ctx, query,
		newRecord.EmployeeID, newRecord.Date, newRecord.CheckIn, newRecord.CheckOut,
		newRecord.Status, newRecord.Notes,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Attendance{}, attendance.ErrAlreadyMarked
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance record: %w", err)
	}
	return created, nil
}

// ExistsByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ExistsByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM attendance WHERE employee_id = $1 AND date = $2)`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check attendance for employee %s: %w", employeeID, err)
	}
	return exists, nil
}

// ListByCompanyAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByCompanyAndDate(ctx context.Context, companyID string, date time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.check_in, a.check_out, a.status, a.notes, a.created_at, a.updated_at
		FROM attendance a
		JOIN employees e ON e.id = a.employee_id
		WHERE e.company_id = $1 AND a.date = $2
		ORDER BY a.check_in
	`

	rows, err := q.Query(ctx, query, companyID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for company %s: %w", companyID, err)
	}
	defer rows.Close()

	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + attendanceColumns + ` FROM attendance WHERE employee_id = $1 ORDER BY date DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, a)
	}
	return records, rows.Err()
}
