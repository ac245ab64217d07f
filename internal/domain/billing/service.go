package billing

import "context"

// Service is the subscription gate plus the payment session broker.
type Service interface {
	// Evaluate decides whether a company may hold wouldBeActiveCount
	// active employees. Callers creating an employee pass the existing
	// active count plus one, before any write. A denial is returned as
	// a *PaymentRequiredError carrying the structured payload.
	Evaluate(ctx context.Context, companyID string, wouldBeActiveCount int) (Decision, error)

	// Check reports the company's current billing position from the
	// live active employee count.
	Check(ctx context.Context, companyID string) (SubscriptionCheckResponse, error)

	// CreateCheckout opens a checkout session at the payment processor
	// for the employees above the free tier.
	CreateCheckout(ctx context.Context, req CreateCheckoutRequest) (CheckoutSession, error)

	// HandleWebhook applies a processor notification to the company's
	// subscription state. Transitions are idempotent; unknown events
	// are logged and ignored.
	HandleWebhook(ctx context.Context, req WebhookRequest) error
}
