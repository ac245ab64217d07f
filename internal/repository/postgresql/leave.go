package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/skellio/hr-backend-go/internal/domain/leave"
	"github.com/skellio/hr-backend-go/internal/pkg/database"
)

const leaveColumns = `
	id, employee_id, leave_type, start_date, end_date, days, reason, status,
	approved_by, approved_at, rejection_reason, created_at, updated_at`

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

func scanLeave(row pgx.Row) (leave.Leave, error) {
	var l leave.Leave
	err := row.Scan(
		&l.ID, &l.EmployeeID, &l.Type, &l.StartDate, &l.EndDate, &l.Days, &l.Reason, &l.Status,
		&l.ApprovedBy, &l.ApprovedAt, &l.RejectionReason, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, newLeave leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leaves (employee_id, leave_type, start_date, end_date, days, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING` + leaveColumns

	created, err := scanLeave(q.QueryRow(ctx, query,
		newLeave.EmployeeID, newLeave.Type, newLeave.StartDate, newLeave.EndDate,
		newLeave.Days, newLeave.Reason, newLeave.Status,
	))
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return created, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + leaveColumns + ` FROM leaves WHERE id = $1`

	found, err := scanLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to get leave request with id %s: %w", id, err)
	}
	return found, nil
}

// ListByCompanyID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListByCompanyID(ctx context.Context, companyID string) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, l.employee_id, l.leave_type, l.start_date, l.end_date, l.days, l.reason, l.status,
			l.approved_by, l.approved_at, l.rejection_reason, l.created_at, l.updated_at
		FROM leaves l
		JOIN employees e ON e.id = l.employee_id
		WHERE e.company_id = $1
		ORDER BY l.created_at DESC
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests for company %s: %w", companyID, err)
	}
	defer rows.Close()

	leaves := make([]leave.Leave, 0)
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		leaves = append(leaves, l)
	}
	return leaves, rows.Err()
}

// ListByEmployee implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + leaveColumns + ` FROM leaves WHERE employee_id = $1 ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	leaves := make([]leave.Leave, 0)
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		leaves = append(leaves, l)
	}
	return leaves, rows.Err()
}

// UpdateStatus implements leave.LeaveRepository.
// The WHERE clause pins the current status to pending so the
// transition can only happen once.
func (r *leaveRepositoryImpl) UpdateStatus(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leaves
		SET status = $1, approved_by = $2, approved_at = $3, rejection_reason = $4, updated_at = NOW()
		WHERE id = $5 AND status = $6
		RETURNING` + leaveColumns

	updated, err := scanLeave(q.QueryRow(ctx, query,
		l.Status, l.ApprovedBy, l.ApprovedAt, l.RejectionReason, l.ID, leave.StatusPending,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Leave{}, leave.ErrAlreadyProcessed
		}
		return leave.Leave{}, fmt.Errorf("failed to update leave request %s: %w", l.ID, err)
	}
	return updated, nil
}

// Delete implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leaves WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete leave request with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}
	return nil
}
