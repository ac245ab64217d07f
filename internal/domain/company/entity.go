package company

import "time"

// SubscriptionStatus is the billing state of a company.
type SubscriptionStatus string

const (
	SubscriptionStatusFree          SubscriptionStatus = "free"
	SubscriptionStatusActive        SubscriptionStatus = "active"
	SubscriptionStatusPaymentFailed SubscriptionStatus = "payment_failed"
	SubscriptionStatusCancelled     SubscriptionStatus = "cancelled"
)

// SubscriptionPlan is the plan a company is billed on.
type SubscriptionPlan string

const (
	SubscriptionPlanFree       SubscriptionPlan = "free"
	SubscriptionPlanGrowth     SubscriptionPlan = "growth"
	SubscriptionPlanEnterprise SubscriptionPlan = "enterprise"
)

type Company struct {
	ID                 string
	Name               string
	Industry           string
	Size               string
	Address            *string
	Phone              *string
	Email              *string
	Website            *string
	SubscriptionStatus SubscriptionStatus
	SubscriptionPlan   SubscriptionPlan
	LastPaymentDate    *time.Time
	NextBillingDate    *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// HasPaidSubscription reports whether the company may hold employees
// beyond the free tier.
func (c *Company) HasPaidSubscription() bool {
	return c.SubscriptionStatus == SubscriptionStatusActive && c.SubscriptionPlan != SubscriptionPlanFree
}
