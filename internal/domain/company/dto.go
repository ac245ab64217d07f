package company

import (
	"time"

	"github.com/skellio/hr-backend-go/internal/pkg/validator"
)

// CreateCompanyRequest is the payload for company registration.
type CreateCompanyRequest struct {
	Name     string  `json:"name"`
	Industry string  `json:"industry"`
	Size     string  `json:"size"`
	Address  *string `json:"address,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
	Website  *string `json:"website,omitempty"`
}

func (r *CreateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if validator.IsEmpty(r.Industry) {
		errs = append(errs, validator.ValidationError{Field: "industry", Message: "industry is required"})
	}
	if validator.IsEmpty(r.Size) {
		errs = append(errs, validator.ValidationError{Field: "size", Message: "size is required"})
	}
	if r.Email != nil && *r.Email != "" && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must be a valid email address"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateCompanyRequest is the payload for HR edits of a company profile.
type UpdateCompanyRequest struct {
	Name     *string `json:"name,omitempty"`
	Industry *string `json:"industry,omitempty"`
	Size     *string `json:"size,omitempty"`
	Address  *string `json:"address,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
	Website  *string `json:"website,omitempty"`
}

// CompanyResponse represents a company in API responses.
type CompanyResponse struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Industry           string  `json:"industry"`
	Size               string  `json:"size"`
	Address            *string `json:"address,omitempty"`
	Phone              *string `json:"phone,omitempty"`
	Email              *string `json:"email,omitempty"`
	Website            *string `json:"website,omitempty"`
	SubscriptionStatus string  `json:"subscription_status"`
	SubscriptionPlan   string  `json:"subscription_plan"`
	LastPaymentDate    *string `json:"last_payment_date,omitempty"`
	NextBillingDate    *string `json:"next_billing_date,omitempty"`
	CreatedAt          string  `json:"created_at"`
}

// ToResponse converts a Company entity to CompanyResponse.
func (c *Company) ToResponse() CompanyResponse {
	resp := CompanyResponse{
		ID:                 c.ID,
		Name:               c.Name,
		Industry:           c.Industry,
		Size:               c.Size,
		Address:            c.Address,
		Phone:              c.Phone,
		Email:              c.Email,
		Website:            c.Website,
		SubscriptionStatus: string(c.SubscriptionStatus),
		SubscriptionPlan:   string(c.SubscriptionPlan),
		CreatedAt:          c.CreatedAt.Format(time.RFC3339),
	}
	if c.LastPaymentDate != nil {
		s := c.LastPaymentDate.Format(time.RFC3339)
		resp.LastPaymentDate = &s
	}
	if c.NextBillingDate != nil {
		s := c.NextBillingDate.Format(time.RFC3339)
		resp.NextBillingDate = &s
	}
	return resp
}
