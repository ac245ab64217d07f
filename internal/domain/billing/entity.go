package billing

import (
	"github.com/shopspring/decimal"
)

// FreeEmployeeLimit is the number of active employees every company may
// hold without a paid subscription.
const FreeEmployeeLimit = 10

// PricePerEmployee is the monthly USD price for each active employee
// above the free tier.
var PricePerEmployee = decimal.NewFromInt(5)

// Decision is the outcome of a subscription gate evaluation.
type Decision struct {
	Allowed         bool
	RequiresPayment bool
	EmployeeCount   int
	PaidEmployees   int
	AmountDue       decimal.Decimal
	Message         string
}

// AmountDueFor computes the amount owed for a given active employee
// count. Counts at or below the free tier owe nothing; above it the
// surplus is billed per employee, with a minimum of one paid seat.
func AmountDueFor(employeeCount int) (paidEmployees int, amount decimal.Decimal) {
	paidEmployees = employeeCount - FreeEmployeeLimit
	if paidEmployees < 1 {
		if employeeCount <= FreeEmployeeLimit {
			return 0, decimal.Zero
		}
		paidEmployees = 1
	}
	return paidEmployees, PricePerEmployee.Mul(decimal.NewFromInt(int64(paidEmployees)))
}

// CheckoutSession is one pending payment attempt at the external
// processor.
type CheckoutSession struct {
	ID        string
	CompanyID string
	Amount    decimal.Decimal
	Currency  string
	Status    string
	IsMock    bool
}

// WebhookEvent is the event name delivered by the payment processor.
type WebhookEvent string

const (
	EventPaymentSucceeded      WebhookEvent = "payment.succeeded"
	EventPaymentFailed         WebhookEvent = "payment.failed"
	EventSubscriptionCancelled WebhookEvent = "subscription.cancelled"
)
