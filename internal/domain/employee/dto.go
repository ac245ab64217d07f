package employee

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/skellio/hr-backend-go/internal/pkg/validator"
)

// CreateEmployeeRequest is the payload for HR employee creation.
type CreateEmployeeRequest struct {
	CompanyID     string          `json:"company_id"`
	EmployeeCode  string          `json:"employee_id"`
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Department    string          `json:"department"`
	Position      string          `json:"position"`
	DateOfJoining string          `json:"date_of_joining"`
	DateOfBirth   *string         `json:"date_of_birth,omitempty"`
	Address       *string         `json:"address,omitempty"`
	Salary        decimal.Decimal `json:"salary"`
	Status        string          `json:"status,omitempty"`

	EmergencyContactName         *string `json:"emergency_contact_name,omitempty"`
	EmergencyContactRelationship *string `json:"emergency_contact_relationship,omitempty"`
	EmergencyContactPhone        *string `json:"emergency_contact_phone,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CompanyID) {
		errs = append(errs, validator.ValidationError{Field: "company_id", Message: "company_id is required"})
	}
	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first_name is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "last_name is required"})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must be a valid email address"})
	}
	if validator.IsEmpty(r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "phone is required"})
	} else if !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "phone must be 7-15 digits"})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department is required"})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "position is required"})
	}
	if validator.IsEmpty(r.DateOfJoining) {
		errs = append(errs, validator.ValidationError{Field: "date_of_joining", Message: "date_of_joining is required"})
	} else if _, ok := validator.IsValidDate(r.DateOfJoining); !ok {
		errs = append(errs, validator.ValidationError{Field: "date_of_joining", Message: "date_of_joining must be YYYY-MM-DD"})
	}
	if r.DateOfBirth != nil && *r.DateOfBirth != "" {
		if _, ok := validator.IsValidDate(*r.DateOfBirth); !ok {
			errs = append(errs, validator.ValidationError{Field: "date_of_birth", Message: "date_of_birth must be YYYY-MM-DD"})
		}
	}
	if r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must not be negative"})
	}
	if r.Status != "" && !IsValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be active, inactive or terminated"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEmployeeRequest is the payload for HR edits; nil fields are
// left untouched.
type UpdateEmployeeRequest struct {
	FirstName   *string          `json:"first_name,omitempty"`
	LastName    *string          `json:"last_name,omitempty"`
	Email       *string          `json:"email,omitempty"`
	Phone       *string          `json:"phone,omitempty"`
	Department  *string          `json:"department,omitempty"`
	Position    *string          `json:"position,omitempty"`
	DateOfBirth *string          `json:"date_of_birth,omitempty"`
	Address     *string          `json:"address,omitempty"`
	Salary      *decimal.Decimal `json:"salary,omitempty"`
	Status      *string          `json:"status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must be a valid email address"})
	}
	if r.Status != nil && !IsValidStatus(*r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be active, inactive or terminated"})
	}
	if r.Salary != nil && r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must not be negative"})
	}
	if r.DateOfBirth != nil && *r.DateOfBirth != "" {
		if _, ok := validator.IsValidDate(*r.DateOfBirth); !ok {
			errs = append(errs, validator.ValidationError{Field: "date_of_birth", Message: "date_of_birth must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetupAccountRequest provisions an identity-provider account for an
// employee so they can use self-service.
type SetupAccountRequest struct {
	EmployeeID string  `json:"employee_id"`
	Email      string  `json:"email"`
	Password   *string `json:"password,omitempty"`
}

func (r *SetupAccountRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EmployeeResponse represents an employee in API responses.
type EmployeeResponse struct {
	ID              string          `json:"id"`
	CompanyID       string          `json:"company_id"`
	EmployeeCode    string          `json:"employee_id"`
	FirstName       string          `json:"first_name"`
	LastName        string          `json:"last_name"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone"`
	Department      string          `json:"department"`
	Position        string          `json:"position"`
	DateOfJoining   string          `json:"date_of_joining"`
	DateOfBirth     *string         `json:"date_of_birth,omitempty"`
	Address         *string         `json:"address,omitempty"`
	Salary          decimal.Decimal `json:"salary"`
	Status          string          `json:"status"`
	HasAccount      bool            `json:"has_account"`
	PasswordChanged bool            `json:"password_changed"`

	EmergencyContactName         *string `json:"emergency_contact_name,omitempty"`
	EmergencyContactRelationship *string `json:"emergency_contact_relationship,omitempty"`
	EmergencyContactPhone        *string `json:"emergency_contact_phone,omitempty"`

	CreatedAt string `json:"created_at"`
}

// ToResponse converts an Employee entity to EmployeeResponse.
func (e *Employee) ToResponse() EmployeeResponse {
	var dob *string
	if e.DateOfBirth != nil {
		s := e.DateOfBirth.Format("2006-01-02")
		dob = &s
	}

	return EmployeeResponse{
		ID:              e.ID,
		CompanyID:       e.CompanyID,
		EmployeeCode:    e.EmployeeCode,
		FirstName:       e.FirstName,
		LastName:        e.LastName,
		Email:           e.Email,
		Phone:           e.Phone,
		Department:      e.Department,
		Position:        e.Position,
		DateOfJoining:   e.DateOfJoining.Format("2006-01-02"),
		DateOfBirth:     dob,
		Address:         e.Address,
		Salary:          e.Salary,
		Status:          string(e.Status),
		HasAccount:      e.ExternalUID != nil && *e.ExternalUID != "",
		PasswordChanged: e.PasswordChanged,

		EmergencyContactName:         e.Emergency.Name,
		EmergencyContactRelationship: e.Emergency.Relationship,
		EmergencyContactPhone:        e.Emergency.Phone,

		CreatedAt: e.CreatedAt.Format(time.RFC3339),
	}
}
