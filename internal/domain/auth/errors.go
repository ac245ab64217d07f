package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrAccountNotFound    = errors.New("account not found, contact your administrator")
	ErrIdentityFailed     = errors.New("identity provider unavailable")
)
