package auth

import (
	"github.com/skellio/hr-backend-go/internal/pkg/validator"
)

// LoginRequest carries credentials forwarded to the identity provider.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must be a valid email address"})
	}
	if r.Password == "" {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RegisterRequest creates an HR user linked to an external identity.
type RegisterRequest struct {
	ExternalUID string `json:"external_uid"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	CompanyID   string `json:"company_id"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ExternalUID) {
		errs = append(errs, validator.ValidationError{Field: "external_uid", Message: "external_uid is required"})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must be a valid email address"})
	}
	if validator.IsEmpty(r.DisplayName) {
		errs = append(errs, validator.ValidationError{Field: "display_name", Message: "display_name is required"})
	}
	if validator.IsEmpty(r.CompanyID) {
		errs = append(errs, validator.ValidationError{Field: "company_id", Message: "company_id is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SyncRequest reconciles an authenticated external identity with a
// local record. IDToken is preferred; the uid/email pair is accepted
// for callers that already hold a verified identity.
type SyncRequest struct {
	IDToken     string `json:"id_token,omitempty"`
	ExternalUID string `json:"external_uid,omitempty"`
	Email       string `json:"email,omitempty"`
}

func (r *SyncRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.IDToken == "" && (r.ExternalUID == "" || r.Email == "") {
		errs = append(errs, validator.ValidationError{Field: "id_token", Message: "id_token or external_uid and email are required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdatePasswordRequest changes the password at the identity provider.
type UpdatePasswordRequest struct {
	IDToken     string `json:"id_token"`
	NewPassword string `json:"new_password"`
}

func (r *UpdatePasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.IDToken) {
		errs = append(errs, validator.ValidationError{Field: "id_token", Message: "id_token is required"})
	}
	if len(r.NewPassword) < 6 {
		errs = append(errs, validator.ValidationError{Field: "new_password", Message: "new_password must be at least 6 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// HRUserResponse represents a synced HR user.
type HRUserResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
	CompanyID   string `json:"company_id"`
}

// LoginResponse carries the issued tokens and the synced account.
type LoginResponse struct {
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
	ExpiresAt    int64          `json:"expires_at"`
	User         HRUserResponse `json:"user"`
	// Degraded is set when the identity provider was unreachable and
	// the account was resolved from the local snapshot instead.
	Degraded bool `json:"degraded,omitempty"`
}

// EmployeeSyncResponse represents a synced employee identity.
type EmployeeSyncResponse struct {
	ID              string `json:"id"`
	EmployeeCode    string `json:"employee_id"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Department      string `json:"department"`
	Position        string `json:"position"`
	CompanyID       string `json:"company_id"`
	PasswordChanged bool   `json:"password_changed"`
	Degraded        bool   `json:"degraded,omitempty"`
}
