package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/skellio/hr-backend-go/internal/domain/company"
	"github.com/skellio/hr-backend-go/internal/pkg/database"
)

const companyColumns = `
	id, name, COALESCE(industry, ''), COALESCE(size, ''), address, phone, email, website,
	subscription_status, subscription_plan, last_payment_date, next_billing_date,
	created_at, updated_at`

type companyRepositoryImpl struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepositoryImpl{db: db}
}

func scanCompany(row pgx.Row) (company.Company, error) {
	var c company.Company
	err := row.Scan(
		&c.ID, &c.Name, &c.Industry, &c.Size, &c.Address, &c.Phone, &c.Email, &c.Website,
		&c.SubscriptionStatus, &c.SubscriptionPlan, &c.LastPaymentDate, &c.NextBillingDate,
		&c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

// Create implements company.CompanyRepository.
func (r *companyRepositoryImpl) Create(ctx context.Context, newCompany company.Company) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO companies (name, industry, size, address, phone, email, website, subscription_status, subscription_plan)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING` + companyColumns

	created, err := scanCompany(q.QueryRow(ctx, query,
		newCompany.Name, newCompany.Industry, newCompany.Size, newCompany.Address,
		newCompany.Phone, newCompany.Email, newCompany.Website,
		newCompany.SubscriptionStatus, newCompany.SubscriptionPlan,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return company.Company{}, company.ErrCompanyNameExists
		}
		return company.Company{}, fmt.Errorf("failed to create company: %w", err)
	}
	return created, nil
}

// GetByID implements company.CompanyRepository.
func (r *companyRepositoryImpl) GetByID(ctx context.Context, id string) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + companyColumns + ` FROM companies WHERE id = $1`

	found, err := scanCompany(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company with id %s: %w", id, err)
	}
	return found, nil
}

// GetByName implements company.CompanyRepository.
func (r *companyRepositoryImpl) GetByName(ctx context.Context, name string) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + companyColumns + ` FROM companies WHERE LOWER(name) = LOWER($1)`

	found, err := scanCompany(q.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company by name: %w", err)
	}
	return found, nil
}

// List implements company.CompanyRepository.
func (r *companyRepositoryImpl) List(ctx context.Context) ([]company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + companyColumns + ` FROM companies ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	companies := make([]company.Company, 0)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

// Update implements company.CompanyRepository.
func (r *companyRepositoryImpl) Update(ctx context.Context, c company.Company) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE companies
		SET name = $1, industry = $2, size = $3, address = $4, phone = $5,
			email = $6, website = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING` + companyColumns

	updated, err := scanCompany(q.QueryRow(ctx, query,
		c.Name, c.Industry, c.Size, c.Address, c.Phone, c.Email, c.Website, c.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return company.Company{}, company.ErrCompanyNameExists
		}
		return company.Company{}, fmt.Errorf("failed to update company with id %s: %w", c.ID, err)
	}
	return updated, nil
}

// UpdateSubscription implements company.CompanyRepository.
func (r *companyRepositoryImpl) UpdateSubscription(ctx context.Context, id string, patch company.SubscriptionPatch) error {
	q := GetQuerier(ctx, r.db)

	setClauses := make([]string, 0, 5)
	args := make([]interface{}, 0, 5)
	i := 1

	if patch.Status != nil {
		setClauses = append(setClauses, fmt.Sprintf("subscription_status = $%d", i))
		args = append(args, *patch.Status)
		i++
	}
	if patch.Plan != nil {
		setClauses = append(setClauses, fmt.Sprintf("subscription_plan = $%d", i))
		args = append(args, *patch.Plan)
		i++
	}
	if patch.LastPaymentDate != nil {
		setClauses = append(setClauses, fmt.Sprintf("last_payment_date = $%d", i))
		args = append(args, *patch.LastPaymentDate)
		i++
	}
	if patch.NextBillingDate != nil {
		setClauses = append(setClauses, fmt.Sprintf("next_billing_date = $%d", i))
		args = append(args, *patch.NextBillingDate)
		i++
	}
	if len(setClauses) == 0 {
		return fmt.Errorf("no subscription fields provided for company update")
	}

	setClauses = append(setClauses, fmt.Sprintf("updated_at = $%d", i))
	args = append(args, time.Now())
	i++

	sql := "UPDATE companies SET " + strings.Join(setClauses, ", ") + fmt.Sprintf(" WHERE id = $%d RETURNING id", i)
	args = append(args, id)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.ErrCompanyNotFound
		}
		return fmt.Errorf("failed to update subscription for company %s: %w", id, err)
	}
	return nil
}
