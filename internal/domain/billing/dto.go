package billing

import (
	"github.com/shopspring/decimal"
	"github.com/skellio/hr-backend-go/internal/pkg/validator"
)

// CreateCheckoutRequest asks for a checkout session covering the
// employees above the free tier.
type CreateCheckoutRequest struct {
	CompanyID     string           `json:"company_id"`
	EmployeeCount int              `json:"employee_count"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
}

func (r *CreateCheckoutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CompanyID) {
		errs = append(errs, validator.ValidationError{Field: "company_id", Message: "company_id is required"})
	}
	if r.EmployeeCount < 1 {
		errs = append(errs, validator.ValidationError{Field: "employee_count", Message: "employee_count is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// WebhookRequest is the payment processor's asynchronous notification.
type WebhookRequest struct {
	Event WebhookEvent `json:"event"`
	Data  WebhookData  `json:"data"`
}

type WebhookData struct {
	CompanyID string `json:"companyId"`
}

// SubscriptionCheckResponse reports a company's billing position.
type SubscriptionCheckResponse struct {
	EmployeeCount   int             `json:"employee_count"`
	RequiresPayment bool            `json:"requires_payment"`
	Status          string          `json:"status"`
	Plan            string          `json:"plan"`
	Amount          decimal.Decimal `json:"amount"`
	PaidEmployees   int             `json:"paid_employees"`
	LastPaymentDate *string         `json:"last_payment_date,omitempty"`
	NextBillingDate *string         `json:"next_billing_date,omitempty"`
}

// CheckoutSessionResponse represents a checkout session in API
// responses.
type CheckoutSessionResponse struct {
	ID        string          `json:"id"`
	CompanyID string          `json:"company_id"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Status    string          `json:"status"`
	IsMock    bool            `json:"is_mock,omitempty"`
}

// ToResponse converts a CheckoutSession to its API shape.
func (s *CheckoutSession) ToResponse() CheckoutSessionResponse {
	return CheckoutSessionResponse{
		ID:        s.ID,
		CompanyID: s.CompanyID,
		Amount:    s.Amount,
		Currency:  s.Currency,
		Status:    s.Status,
		IsMock:    s.IsMock,
	}
}
