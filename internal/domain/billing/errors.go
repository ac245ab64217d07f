package billing

import (
	"errors"
	"fmt"
)

var (
	ErrPaymentNotRequired      = errors.New("payment not required for 10 or fewer employees")
	ErrInvalidWebhookSignature = errors.New("invalid webhook signature")
	ErrMissingCompanyID        = errors.New("webhook data is missing company id")
)

// PaymentRequiredError is returned by the subscription gate when an
// employee creation would exceed the free tier without an active paid
// subscription. It carries the structured denial payload.
type PaymentRequiredError struct {
	Decision Decision
}

func (e *PaymentRequiredError) Error() string {
	return fmt.Sprintf("subscription payment required: %d active employees, %s USD due",
		e.Decision.EmployeeCount, e.Decision.AmountDue.StringFixed(2))
}

// AsPaymentRequired unwraps a PaymentRequiredError if err carries one.
func AsPaymentRequired(err error) (*PaymentRequiredError, bool) {
	var pre *PaymentRequiredError
	if errors.As(err, &pre) {
		return pre, true
	}
	return nil, false
}
