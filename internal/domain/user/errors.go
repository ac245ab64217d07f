package user

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUserExists          = errors.New("user already exists")
	ErrCompanyIDRequired   = errors.New("no company associated with this user")
	ErrAdminAccessRequired = errors.New("hr_admin access required")
)
