package company

import (
	"context"
	"time"
)

// CompanyRepository handles company data operations
type CompanyRepository interface {
	// Create creates a new company
	Create(ctx context.Context, c Company) (Company, error)

	// GetByID retrieves a company by its ID
	GetByID(ctx context.Context, id string) (Company, error)

	// GetByName retrieves a company by its name, case-insensitive
	GetByName(ctx context.Context, name string) (Company, error)

	// List retrieves all companies
	List(ctx context.Context) ([]Company, error)

	// Update updates company profile fields
	Update(ctx context.Context, c Company) (Company, error)

	// UpdateSubscription updates the billing fields on a company
	UpdateSubscription(ctx context.Context, id string, patch SubscriptionPatch) error
}

// SubscriptionPatch carries the billing fields mutated by the payment
// webhook handler. Nil pointers leave the column untouched.
type SubscriptionPatch struct {
	Status          *SubscriptionStatus
	Plan            *SubscriptionPlan
	LastPaymentDate *time.Time
	NextBillingDate *time.Time
}
