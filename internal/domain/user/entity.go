package user

import "time"

// HRUser is an HR staff account linked to an external identity.
type HRUser struct {
	ID          string
	ExternalUID string
	Email       string
	DisplayName string
	Role        Role
	CompanyID   string
	SyncedEmail *string
	SyncedAt    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Role string

const (
	RoleAdmin   Role = "hr_admin"
	RoleManager Role = "hr_manager"
	RoleStaff   Role = "hr_staff"
)

func IsValidRole(r string) bool {
	switch Role(r) {
	case RoleAdmin, RoleManager, RoleStaff:
		return true
	}
	return false
}
