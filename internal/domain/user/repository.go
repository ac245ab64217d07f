package user

import "context"

// UserRepository handles HR user account data operations
type UserRepository interface {
	// Create creates a new HR user
	Create(ctx context.Context, u HRUser) (HRUser, error)

	// GetByID retrieves an HR user by its ID
	GetByID(ctx context.Context, id string) (HRUser, error)

	// GetByExternalUID retrieves an HR user by identity-provider uid
	GetByExternalUID(ctx context.Context, externalUID string) (HRUser, error)

	// GetByEmail retrieves an HR user by email
	GetByEmail(ctx context.Context, email string) (HRUser, error)

	// UpdateSyncSnapshot stores the last known identity snapshot
	UpdateSyncSnapshot(ctx context.Context, id string, syncedEmail string) error
}
