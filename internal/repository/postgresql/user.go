package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/skellio/hr-backend-go/internal/domain/user"
	"github.com/skellio/hr-backend-go/internal/pkg/database"
)

const hrUserColumns = `
	id, external_uid, email, display_name, role, company_id, synced_email, synced_at,
	created_at, updated_at`

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

func scanHRUser(row pgx.Row) (user.HRUser, error) {
	var u user.HRUser
	err := row.Scan(
		&u.ID, &u.ExternalUID, &u.Email, &u.DisplayName, &u.Role, &u.CompanyID,
		&u.SyncedEmail, &u.SyncedAt, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.HRUser) (user.HRUser, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO hr_users (external_uid, email, display_name, role, company_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING` + hrUserColumns

	created, err := scanHRUser(q.QueryRow(ctx, query,
		newUser.ExternalUID, newUser.Email, newUser.DisplayName, newUser.Role, newUser.CompanyID,
	))
	if err != nil {
		return user.HRUser{}, fmt.Errorf("failed to create hr user: %w", err)
	}
	return created, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.HRUser, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + hrUserColumns + ` FROM hr_users WHERE id = $1`

	found, err := scanHRUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.HRUser{}, user.ErrUserNotFound
		}
		return user.HRUser{}, fmt.Errorf("failed to get hr user with id %s: %w", id, err)
	}
	return found, nil
}

// GetByExternalUID implements user.UserRepository.
func (r *userRepositoryImpl) GetByExternalUID(ctx context.Context, externalUID string) (user.HRUser, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + hrUserColumns + ` FROM hr_users WHERE external_uid = $1`

	found, err := scanHRUser(q.QueryRow(ctx, query, externalUID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.HRUser{}, user.ErrUserNotFound
		}
		return user.HRUser{}, fmt.Errorf("failed to get hr user by external uid: %w", err)
	}
	return found, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.HRUser, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + hrUserColumns + ` FROM hr_users WHERE LOWER(email) = LOWER($1)`

	found, err := scanHRUser(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.HRUser{}, user.ErrUserNotFound
		}
		return user.HRUser{}, fmt.Errorf("failed to get hr user by email: %w", err)
	}
	return found, nil
}

// UpdateSyncSnapshot implements user.UserRepository.
func (r *userRepositoryImpl) UpdateSyncSnapshot(ctx context.Context, id string, syncedEmail string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE hr_users
		SET synced_email = $1, synced_at = NOW(), updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, syncedEmail, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.ErrUserNotFound
		}
		return fmt.Errorf("failed to update sync snapshot for hr user %s: %w", id, err)
	}
	return nil
}
