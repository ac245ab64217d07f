package leave

import "time"

type Leave struct {
	ID              string
	EmployeeID      string
	Type            Type
	StartDate       time.Time
	EndDate         time.Time
	Days            int
	Reason          string
	Status          Status
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Type string

const (
	TypeSick      Type = "sick"
	TypeVacation  Type = "vacation"
	TypePersonal  Type = "personal"
	TypeMaternity Type = "maternity"
	TypePaternity Type = "paternity"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func IsValidType(t string) bool {
	switch Type(t) {
	case TypeSick, TypeVacation, TypePersonal, TypeMaternity, TypePaternity:
		return true
	}
	return false
}

// DayCount returns the inclusive calendar day span of a leave.
func DayCount(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
