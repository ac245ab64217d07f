package auth

import "context"

type AuthService interface {
	// Login authenticates an HR user against the identity provider and
	// issues API tokens.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	// LoginWithGoogle issues API tokens for an HR user already
	// verified by the Google OAuth flow.
	LoginWithGoogle(ctx context.Context, email string) (LoginResponse, error)
	// Register links a verified external identity to a new HR user.
	Register(ctx context.Context, req RegisterRequest) (HRUserResponse, error)
	// SyncUser reconciles an external identity with the local HR user
	// record, falling back to the cached snapshot when the provider is
	// unreachable.
	SyncUser(ctx context.Context, req SyncRequest) (HRUserResponse, bool, error)
	// SyncEmployee reconciles an external identity with the employee
	// record for self-service logins.
	SyncEmployee(ctx context.Context, req SyncRequest) (EmployeeSyncResponse, error)
	// UpdatePassword changes the password at the identity provider and
	// clears the first-login flag on the employee record.
	UpdatePassword(ctx context.Context, req UpdatePasswordRequest) error
	Refresh(ctx context.Context, refreshToken string) (LoginResponse, error)
	Logout(ctx context.Context, refreshToken string)
}
