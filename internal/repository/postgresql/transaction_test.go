package postgresql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"

	"github.com/skellio/hr-backend-go/internal/domain/company"
)

func TestWithTransaction_CommitsAndRoutesQueries(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	now := time.Now().UTC()
	mock.ExpectBegin()
	mock.ExpectQuery(`FROM companies WHERE LOWER\(name\) = LOWER\(\$1\)`).
		WithArgs("Acme Corp").
		WillReturnRows(companyRows().AddRow(
			"company-1", "Acme Corp", "Software", "11-50", nil, nil, nil, nil,
			company.SubscriptionStatusFree, company.SubscriptionPlanFree, nil, nil,
			now, now,
		))
	mock.ExpectCommit()

	repo := &companyRepositoryImpl{}
	err = WithTransaction(context.Background(), mock, func(tx pgx.Tx) error {
		txCtx := context.WithValue(context.Background(), "tx", tx)
		found, err := repo.GetByName(txCtx, "Acme Corp")
		if err != nil {
			return err
		}
		if found.ID != "company-1" {
			t.Fatalf("expected company-1, got %s", found.ID)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithTransaction returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestWithTransaction_RollsBackOnError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err = WithTransaction(context.Background(), mock, func(tx pgx.Tx) error {
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected the callback error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
