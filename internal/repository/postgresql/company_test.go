package postgresql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"

	"github.com/skellio/hr-backend-go/internal/domain/company"
	"github.com/skellio/hr-backend-go/internal/domain/employee"
)

// txContext begins a mock transaction and stashes it in the context the
// way WithTransaction callers do, so GetQuerier routes queries to the
// mock instead of a live pool.
func txContext(t *testing.T, mock pgxmock.PgxPoolIface) context.Context {
	t.Helper()
	mock.ExpectBegin()
	tx, err := mock.Begin(context.Background())
	if err != nil {
		t.Fatalf("failed to begin mock transaction: %v", err)
	}
	return context.WithValue(context.Background(), "tx", tx)
}

func companyRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "name", "industry", "size", "address", "phone", "email", "website",
		"subscription_status", "subscription_plan", "last_payment_date", "next_billing_date",
		"created_at", "updated_at",
	})
}

func TestCompanyRepository_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	ctx := txContext(t, mock)
	repo := &companyRepositoryImpl{}

	now := time.Now().UTC()
	mock.ExpectQuery(`FROM companies WHERE id = \$1`).
		WithArgs("company-1").
		WillReturnRows(companyRows().AddRow(
			"company-1", "Acme Corp", "Software", "11-50", nil, nil, nil, nil,
			company.SubscriptionStatusFree, company.SubscriptionPlanFree, nil, nil,
			now, now,
		))

	found, err := repo.GetByID(ctx, "company-1")
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if found.Name != "Acme Corp" {
		t.Fatalf("expected name Acme Corp, got %s", found.Name)
	}
	if found.SubscriptionStatus != company.SubscriptionStatusFree {
		t.Fatalf("expected free status, got %s", found.SubscriptionStatus)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCompanyRepository_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	ctx := txContext(t, mock)
	repo := &companyRepositoryImpl{}

	mock.ExpectQuery(`FROM companies WHERE id = \$1`).
		WithArgs("ghost").
		WillReturnError(pgx.ErrNoRows)

	_, err = repo.GetByID(ctx, "ghost")
	if !errors.Is(err, company.ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound, got %v", err)
	}
}

func TestCompanyRepository_Create_DuplicateName(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	ctx := txContext(t, mock)
	repo := &companyRepositoryImpl{}

	mock.ExpectQuery(`INSERT INTO companies`).
		WithArgs("Acme Corp", "", "", (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil),
			company.SubscriptionStatusFree, company.SubscriptionPlanFree).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err = repo.Create(ctx, company.Company{
		Name:               "Acme Corp",
		SubscriptionStatus: company.SubscriptionStatusFree,
		SubscriptionPlan:   company.SubscriptionPlanFree,
	})
	if !errors.Is(err, company.ErrCompanyNameExists) {
		t.Fatalf("expected ErrCompanyNameExists, got %v", err)
	}
}

func TestCompanyRepository_UpdateSubscription_PartialPatch(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	ctx := txContext(t, mock)
	repo := &companyRepositoryImpl{}

	status := company.SubscriptionStatusActive
	plan := company.SubscriptionPlanGrowth

	mock.ExpectQuery(`UPDATE companies SET subscription_status = \$1, subscription_plan = \$2, updated_at = \$3 WHERE id = \$4 RETURNING id`).
		WithArgs(status, plan, pgxmock.AnyArg(), "company-1").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("company-1"))

	err = repo.UpdateSubscription(ctx, "company-1", company.SubscriptionPatch{
		Status: &status,
		Plan:   &plan,
	})
	if err != nil {
		t.Fatalf("UpdateSubscription returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCompanyRepository_UpdateSubscription_EmptyPatch(t *testing.T) {
	repo := &companyRepositoryImpl{}

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	ctx := txContext(t, mock)

	if err := repo.UpdateSubscription(ctx, "company-1", company.SubscriptionPatch{}); err == nil {
		t.Fatal("expected error for empty patch")
	}
}

func TestEmployeeRepository_CountActiveByCompanyID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	ctx := txContext(t, mock)
	repo := &employeeRepositoryImpl{}

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM employees WHERE company_id = \$1 AND status = \$2`).
		WithArgs("company-1", employee.StatusActive).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(10))

	count, err := repo.CountActiveByCompanyID(ctx, "company-1")
	if err != nil {
		t.Fatalf("CountActiveByCompanyID returned error: %v", err)
	}
	if count != 10 {
		t.Fatalf("expected count 10, got %d", count)
	}
}

func TestEmployeeRepository_ExistsByCode(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	ctx := txContext(t, mock)
	repo := &employeeRepositoryImpl{}

	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM employees WHERE company_id = \$1 AND employee_code = \$2\)`).
		WithArgs("company-1", "EMP-001").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByCode(ctx, "company-1", "EMP-001")
	if err != nil {
		t.Fatalf("ExistsByCode returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists true")
	}
}
