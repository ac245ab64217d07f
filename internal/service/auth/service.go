package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/skellio/hr-backend-go/internal/domain/auth"
	"github.com/skellio/hr-backend-go/internal/domain/employee"
	"github.com/skellio/hr-backend-go/internal/domain/user"
	"github.com/skellio/hr-backend-go/internal/pkg/identity"
	"github.com/skellio/hr-backend-go/internal/pkg/jwt"
)

const (
	maxSyncAttempts = 3
	syncBackoffBase = 100 * time.Millisecond
)

// IdentityClient is the slice of the identity provider client the auth
// service depends on.
type IdentityClient interface {
	SignInWithPassword(ctx context.Context, email, password string) (identity.Identity, error)
	Lookup(ctx context.Context, idToken string) (identity.Identity, error)
	UpdatePassword(ctx context.Context, idToken, newPassword string) (identity.Identity, error)
}

type AuthServiceImpl struct {
	userRepo     user.UserRepository
	employeeRepo employee.EmployeeRepository
	identities   IdentityClient
	jwtService   jwt.Service
	logger       *slog.Logger

	sleep func(time.Duration)
}

func NewAuthService(
	userRepo user.UserRepository,
	employeeRepo employee.EmployeeRepository,
	identities IdentityClient,
	jwtService jwt.Service,
	logger *slog.Logger,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		userRepo:     userRepo,
		employeeRepo: employeeRepo,
		identities:   identities,
		jwtService:   jwtService,
		logger:       logger,
		sleep:        time.Sleep,
	}
}

// retryable reports whether a provider error is worth another attempt.
// Definitive provider answers, wrong password included, are final.
func retryable(err error) bool {
	var apiErr *identity.APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500
	}
	return true
}

// lookupWithRetry resolves an id token against the provider with up to
// maxSyncAttempts tries and exponential backoff between them.
func (s *AuthServiceImpl) lookupWithRetry(ctx context.Context, idToken string) (identity.Identity, error) {
	var lastErr error
	backoff := syncBackoffBase
	for attempt := 1; attempt <= maxSyncAttempts; attempt++ {
		ident, err := s.identities.Lookup(ctx, idToken)
		if err == nil {
			return ident, nil
		}
		lastErr = err
		if !retryable(err) {
			return identity.Identity{}, err
		}
		s.logger.WarnContext(ctx, "identity lookup failed",
			slog.Int("attempt", attempt),
			slog.Any("error", err),
		)
		if attempt < maxSyncAttempts {
			s.sleep(backoff)
			backoff *= 2
		}
	}
	return identity.Identity{}, fmt.Errorf("%w: %v", auth.ErrIdentityFailed, lastErr)
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	ident, err := s.identities.SignInWithPassword(ctx, req.Email, req.Password)
	if err != nil {
		var apiErr *identity.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode < 500 {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("%w: %v", auth.ErrIdentityFailed, err)
	}

	account, err := s.userRepo.GetByExternalUID(ctx, ident.UID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrAccountNotFound
		}
		return auth.LoginResponse{}, err
	}

	if err := s.userRepo.UpdateSyncSnapshot(ctx, account.ID, ident.Email); err != nil {
		s.logger.WarnContext(ctx, "failed to refresh sync snapshot",
			slog.String("user_id", account.ID),
			slog.Any("error", err),
		)
	}

	return s.issueTokens(account, false)
}

func (s *AuthServiceImpl) issueTokens(account user.HRUser, degraded bool) (auth.LoginResponse, error) {
	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(account.ID, account.Email, account.CompanyID, account.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, _, err := s.jwtService.GenerateRefreshToken(account.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		User: auth.HRUserResponse{
			ID:          account.ID,
			Email:       account.Email,
			DisplayName: account.DisplayName,
			Role:        string(account.Role),
			CompanyID:   account.CompanyID,
		},
		Degraded: degraded,
	}, nil
}

// LoginWithGoogle implements auth.AuthService.
// The caller has already verified the email via the OAuth exchange.
func (s *AuthServiceImpl) LoginWithGoogle(ctx context.Context, email string) (auth.LoginResponse, error) {
	account, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrAccountNotFound
		}
		return auth.LoginResponse{}, err
	}
	return s.issueTokens(account, false)
}

// Register implements auth.AuthService.
// The first HR user of a company gets the admin role.
func (s *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.HRUserResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.HRUserResponse{}, err
	}

	if _, err := s.userRepo.GetByExternalUID(ctx, req.ExternalUID); err == nil {
		return auth.HRUserResponse{}, user.ErrUserExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return auth.HRUserResponse{}, err
	}

	created, err := s.userRepo.Create(ctx, user.HRUser{
		ExternalUID: req.ExternalUID,
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Role:        user.RoleAdmin,
		CompanyID:   req.CompanyID,
	})
	if err != nil {
		return auth.HRUserResponse{}, err
	}

	s.logger.InfoContext(ctx, "hr user registered",
		slog.String("user_id", created.ID),
		slog.String("company_id", created.CompanyID),
	)

	return auth.HRUserResponse{
		ID:          created.ID,
		Email:       created.Email,
		DisplayName: created.DisplayName,
		Role:        string(created.Role),
		CompanyID:   created.CompanyID,
	}, nil
}

// SyncUser implements auth.AuthService.
// When the provider stays unreachable after the retries and the caller
// supplied a uid/email pair, the account is resolved from the local
// snapshot instead; the second return value reports that degraded path.
func (s *AuthServiceImpl) SyncUser(ctx context.Context, req auth.SyncRequest) (auth.HRUserResponse, bool, error) {
	if err := req.Validate(); err != nil {
		return auth.HRUserResponse{}, false, err
	}

	var (
		ident    identity.Identity
		degraded bool
	)

	switch {
	case req.IDToken != "":
		var err error
		ident, err = s.lookupWithRetry(ctx, req.IDToken)
		if err != nil {
			if !errors.Is(err, auth.ErrIdentityFailed) || req.ExternalUID == "" || req.Email == "" {
				return auth.HRUserResponse{}, false, err
			}
			ident = identity.Identity{UID: req.ExternalUID, Email: req.Email}
			degraded = true
		}
	default:
		ident = identity.Identity{UID: req.ExternalUID, Email: req.Email}
		degraded = true
	}

	account, err := s.userRepo.GetByExternalUID(ctx, ident.UID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.HRUserResponse{}, false, auth.ErrAccountNotFound
		}
		return auth.HRUserResponse{}, false, err
	}

	if degraded {
		// The snapshot must corroborate the unverified email claim.
		if account.SyncedEmail == nil || *account.SyncedEmail != ident.Email {
			return auth.HRUserResponse{}, false, auth.ErrAccountNotFound
		}
		s.logger.WarnContext(ctx, "identity provider unreachable, serving cached account snapshot",
			slog.String("user_id", account.ID),
		)
	} else {
		if err := s.userRepo.UpdateSyncSnapshot(ctx, account.ID, ident.Email); err != nil {
			s.logger.WarnContext(ctx, "failed to refresh sync snapshot",
				slog.String("user_id", account.ID),
				slog.Any("error", err),
			)
		}
	}

	return auth.HRUserResponse{
		ID:          account.ID,
		Email:       account.Email,
		DisplayName: account.DisplayName,
		Role:        string(account.Role),
		CompanyID:   account.CompanyID,
	}, degraded, nil
}

// SyncEmployee implements auth.AuthService.
func (s *AuthServiceImpl) SyncEmployee(ctx context.Context, req auth.SyncRequest) (auth.EmployeeSyncResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.EmployeeSyncResponse{}, err
	}

	var (
		ident    identity.Identity
		degraded bool
	)

	switch {
	case req.IDToken != "":
		var err error
		ident, err = s.lookupWithRetry(ctx, req.IDToken)
		if err != nil {
			if !errors.Is(err, auth.ErrIdentityFailed) || req.ExternalUID == "" || req.Email == "" {
				return auth.EmployeeSyncResponse{}, err
			}
			ident = identity.Identity{UID: req.ExternalUID, Email: req.Email}
			degraded = true
		}
	default:
		ident = identity.Identity{UID: req.ExternalUID, Email: req.Email}
		degraded = true
	}

	emp, err := s.employeeRepo.GetByEmailAndUID(ctx, ident.Email, ident.UID)
	if errors.Is(err, employee.ErrEmployeeNotFound) && !degraded {
		// First contact: the uid link is not stamped yet. The provider
		// has verified the email, so match on it alone; LinkIdentity
		// below persists the uid for subsequent syncs.
		emp, err = s.employeeRepo.GetByEmail(ctx, ident.Email)
	}
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.EmployeeSyncResponse{}, auth.ErrAccountNotFound
		}
		return auth.EmployeeSyncResponse{}, err
	}
	if emp.Status != employee.StatusActive {
		return auth.EmployeeSyncResponse{}, employee.ErrEmployeeInactive
	}

	if degraded {
		if emp.SyncedEmail == nil || *emp.SyncedEmail != ident.Email {
			return auth.EmployeeSyncResponse{}, auth.ErrAccountNotFound
		}
		s.logger.WarnContext(ctx, "identity provider unreachable, serving cached employee snapshot",
			slog.String("employee_id", emp.ID),
		)
	} else if err := s.employeeRepo.LinkIdentity(ctx, emp.ID, ident.UID, ident.Email); err != nil {
		s.logger.WarnContext(ctx, "failed to refresh employee sync snapshot",
			slog.String("employee_id", emp.ID),
			slog.Any("error", err),
		)
	}

	return auth.EmployeeSyncResponse{
		ID:              emp.ID,
		EmployeeCode:    emp.EmployeeCode,
		FirstName:       emp.FirstName,
		LastName:        emp.LastName,
		Email:           emp.Email,
		Department:      emp.Department,
		Position:        emp.Position,
		CompanyID:       emp.CompanyID,
		PasswordChanged: emp.PasswordChanged,
		Degraded:        degraded,
	}, nil
}

// UpdatePassword implements auth.AuthService.
func (s *AuthServiceImpl) UpdatePassword(ctx context.Context, req auth.UpdatePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	ident, err := s.identities.UpdatePassword(ctx, req.IDToken, req.NewPassword)
	if err != nil {
		var apiErr *identity.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode < 500 {
			return auth.ErrInvalidToken
		}
		return fmt.Errorf("%w: %v", auth.ErrIdentityFailed, err)
	}

	emp, err := s.employeeRepo.GetByEmailAndUID(ctx, ident.Email, ident.UID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			// HR users change passwords too; only employees carry the
			// first-login flag.
			return nil
		}
		return err
	}

	if err := s.employeeRepo.MarkPasswordChanged(ctx, emp.ID); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "employee password changed",
		slog.String("employee_id", emp.ID),
	)
	return nil
}

// Refresh implements auth.AuthService.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.LoginResponse, error) {
	userID, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	account, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrAccountNotFound
		}
		return auth.LoginResponse{}, err
	}

	return s.issueTokens(account, false)
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) {
	if refreshToken != "" {
		s.jwtService.RevokeToken(refreshToken)
	}
}
