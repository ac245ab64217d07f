package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID              string
	CompanyID       string
	EmployeeCode    string
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	Department      string
	Position        string
	DateOfJoining   time.Time
	DateOfBirth     *time.Time
	Address         *string
	Salary          decimal.Decimal
	Status          Status
	ExternalUID     *string
	PasswordChanged bool
	Emergency       EmergencyContact
	SyncedEmail     *string
	SyncedAt        *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Status string

const (
	StatusActive     Status = "active"
	StatusInactive   Status = "inactive"
	StatusTerminated Status = "terminated"
)

// EmergencyContact is embedded on the employee record.
type EmergencyContact struct {
	Name         *string
	Relationship *string
	Phone        *string
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusActive, StatusInactive, StatusTerminated:
		return true
	}
	return false
}
