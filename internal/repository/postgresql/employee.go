package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/skellio/hr-backend-go/internal/domain/employee"
	"github.com/skellio/hr-backend-go/internal/pkg/database"
)

const employeeColumns = `
	id, company_id, employee_code, first_name, last_name, email, phone,
	department, position, date_of_joining, date_of_birth, address, salary, status,
	external_uid, password_changed,
	emergency_contact_name, emergency_contact_relationship, emergency_contact_phone,
	synced_email, synced_at, created_at, updated_at`

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.CompanyID, &e.EmployeeCode, &e.FirstName, &e.LastName, &e.Email, &e.Phone,
		&e.Department, &e.Position, &e.DateOfJoining, &e.DateOfBirth, &e.Address, &e.Salary, &e.Status,
		&e.ExternalUID, &e.PasswordChanged,
		&e.Emergency.Name, &e.Emergency.Relationship, &e.Emergency.Phone,
		&e.SyncedEmail, &e.SyncedAt, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			company_id, employee_code, first_name, last_name, email, phone,
			department, position, date_of_joining, date_of_birth, address, salary, status,
			emergency_contact_name, emergency_contact_relationship, emergency_contact_phone
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.CompanyID, newEmployee.EmployeeCode, newEmployee.FirstName, newEmployee.LastName,
		newEmployee.Email, newEmployee.Phone, newEmployee.Department, newEmployee.Position,
		newEmployee.DateOfJoining, newEmployee.DateOfBirth, newEmployee.Address,
		newEmployee.Salary, newEmployee.Status,
		newEmployee.Emergency.Name, newEmployee.Emergency.Relationship, newEmployee.Emergency.Phone,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + employeeColumns + ` FROM employees WHERE id = $1`

	found, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee with id %s: %w", id, err)
	}
	return found, nil
}

// GetByEmail implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + employeeColumns + ` FROM employees WHERE LOWER(email) = LOWER($1) ORDER BY created_at DESC LIMIT 1`

	found, err := scanEmployee(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by email: %w", err)
	}
	return found, nil
}

// GetByEmailAndUID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmailAndUID(ctx context.Context, email, externalUID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + employeeColumns + ` FROM employees WHERE LOWER(email) = LOWER($1) AND external_uid = $2`

	found, err := scanEmployee(q.QueryRow(ctx, query, email, externalUID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by email and uid: %w", err)
	}
	return found, nil
}

// ListByCompanyID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + employeeColumns + ` FROM employees WHERE company_id = $1 ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees for company %s: %w", companyID, err)
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// CountActiveByCompanyID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) CountActiveByCompanyID(ctx context.Context, companyID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COUNT(*) FROM employees WHERE company_id = $1 AND status = $2`

	var count int
	if err := q.QueryRow(ctx, query, companyID, employee.StatusActive).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count active employees for company %s: %w", companyID, err)
	}
	return count, nil
}

// ExistsByCode implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ExistsByCode(ctx context.Context, companyID, employeeCode string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM employees WHERE company_id = $1 AND employee_code = $2)`

	var exists bool
	if err := q.QueryRow(ctx, query, companyID, employeeCode).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check employee code: %w", err)
	}
	return exists, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET first_name = $1, last_name = $2, email = $3, phone = $4,
			department = $5, position = $6, date_of_joining = $7, date_of_birth = $8,
			address = $9, salary = $10, status = $11,
			emergency_contact_name = $12, emergency_contact_relationship = $13, emergency_contact_phone = $14,
			updated_at = NOW()
		WHERE id = $15
		RETURNING` + employeeColumns

	updated, err := scanEmployee(q.QueryRow(ctx, query,
		e.FirstName, e.LastName, e.Email, e.Phone,
		e.Department, e.Position, e.DateOfJoining, e.DateOfBirth,
		e.Address, e.Salary, e.Status,
		e.Emergency.Name, e.Emergency.Relationship, e.Emergency.Phone,
		e.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee with id %s: %w", e.ID, err)
	}
	return updated, nil
}

// LinkIdentity implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) LinkIdentity(ctx context.Context, id string, externalUID, syncedEmail string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET external_uid = $1, synced_email = $2, synced_at = NOW(), updated_at = NOW()
		WHERE id = $3
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, externalUID, syncedEmail, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to link identity for employee %s: %w", id, err)
	}
	return nil
}

// MarkPasswordChanged implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) MarkPasswordChanged(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET password_changed = TRUE, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to mark password changed for employee %s: %w", id, err)
	}
	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
