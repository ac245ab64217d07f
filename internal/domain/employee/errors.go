package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeCodeExists = errors.New("employee code already exists")
	ErrInvalidStatus      = errors.New("status must be active, inactive or terminated")
	ErrEmployeeInactive   = errors.New("employee account is not active")
	ErrAccountLinked      = errors.New("employee already has an identity account")
)
