package attendance

import (
	"time"

	"github.com/skellio/hr-backend-go/internal/pkg/validator"
)

// MarkAttendanceRequest is the payload for marking attendance.
type MarkAttendanceRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	CheckIn    string  `json:"check_in"`
	CheckOut   *string `json:"check_out,omitempty"`
	Status     string  `json:"status"`
	Notes      *string `json:"notes,omitempty"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date is required"})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.CheckIn) {
		errs = append(errs, validator.ValidationError{Field: "check_in", Message: "check_in is required"})
	} else if _, ok := validator.IsValidDateTime(r.CheckIn); !ok {
		errs = append(errs, validator.ValidationError{Field: "check_in", Message: "check_in must be an ISO8601 timestamp"})
	}
	if r.CheckOut != nil && *r.CheckOut != "" {
		if _, ok := validator.IsValidDateTime(*r.CheckOut); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_out", Message: "check_out must be an ISO8601 timestamp"})
		}
	}
	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status is required"})
	} else if !IsValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be present, absent, late or half_day"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AttendanceResponse represents an attendance record in API responses.
type AttendanceResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	CheckIn    string  `json:"check_in"`
	CheckOut   *string `json:"check_out,omitempty"`
	Status     string  `json:"status"`
	Notes      *string `json:"notes,omitempty"`
}

// ToResponse converts an Attendance entity to AttendanceResponse.
func (a *Attendance) ToResponse() AttendanceResponse {
	var checkOut *string
	if a.CheckOut != nil {
		s := a.CheckOut.Format(time.RFC3339)
		checkOut = &s
	}

	return AttendanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date.Format("2006-01-02"),
		CheckIn:    a.CheckIn.Format(time.RFC3339),
		CheckOut:   checkOut,
		Status:     string(a.Status),
		Notes:      a.Notes,
	}
}
