package billing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/skellio/hr-backend-go/internal/domain/billing"
	"github.com/skellio/hr-backend-go/internal/domain/company"
	"github.com/skellio/hr-backend-go/internal/domain/employee"
	"github.com/skellio/hr-backend-go/internal/pkg/payment"
)

// billingPeriod is the length of one paid subscription cycle.
const billingPeriod = 30 * 24 * time.Hour

// PaymentClient is the slice of the payment processor client the
// billing service depends on.
type PaymentClient interface {
	CreateCheckout(ctx context.Context, req payment.CheckoutRequest) (payment.CheckoutSession, error)
	IsMockMode() bool
}

type BillingServiceImpl struct {
	companyRepo  company.CompanyRepository
	employeeRepo employee.EmployeeRepository
	payments     PaymentClient
	logger       *slog.Logger

	// now is injectable so billing-date arithmetic is testable.
	now func() time.Time
}

func NewBillingService(
	companyRepo company.CompanyRepository,
	employeeRepo employee.EmployeeRepository,
	payments PaymentClient,
	logger *slog.Logger,
) *BillingServiceImpl {
	return &BillingServiceImpl{
		companyRepo:  companyRepo,
		employeeRepo: employeeRepo,
		payments:     payments,
		logger:       logger,
		now:          time.Now,
	}
}

// WithClock overrides the service clock.
func (s *BillingServiceImpl) WithClock(now func() time.Time) *BillingServiceImpl {
	s.now = now
	return s
}

// Evaluate implements billing.Service.
// The count passed in is the number of active employees the company
// would hold after the pending write, so the decision covers the write
// itself before it happens.
func (s *BillingServiceImpl) Evaluate(ctx context.Context, companyID string, wouldBeActiveCount int) (billing.Decision, error) {
	if wouldBeActiveCount <= billing.FreeEmployeeLimit {
		return billing.Decision{Allowed: true, EmployeeCount: wouldBeActiveCount}, nil
	}

	c, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		if !errors.Is(err, company.ErrCompanyNotFound) {
			return billing.Decision{}, fmt.Errorf("failed to load company for subscription gate: %w", err)
		}
		// A missing company record gates like a free one.
		c = company.Company{
			ID:                 companyID,
			SubscriptionStatus: company.SubscriptionStatusFree,
			SubscriptionPlan:   company.SubscriptionPlanFree,
		}
	}

	if c.HasPaidSubscription() {
		return billing.Decision{Allowed: true, EmployeeCount: wouldBeActiveCount}, nil
	}

	paidEmployees, amount := billing.AmountDueFor(wouldBeActiveCount)
	decision := billing.Decision{
		Allowed:         false,
		RequiresPayment: true,
		EmployeeCount:   wouldBeActiveCount,
		PaidEmployees:   paidEmployees,
		AmountDue:       amount,
		Message: fmt.Sprintf("Adding employee #%d requires an active subscription. The first %d employees are free.",
			wouldBeActiveCount, billing.FreeEmployeeLimit),
	}

	s.logger.InfoContext(ctx, "subscription gate denied employee write",
		slog.String("company_id", companyID),
		slog.Int("employee_count", wouldBeActiveCount),
		slog.String("amount_due", amount.StringFixed(2)),
	)

	return decision, &billing.PaymentRequiredError{Decision: decision}
}

// Check implements billing.Service.
func (s *BillingServiceImpl) Check(ctx context.Context, companyID string) (billing.SubscriptionCheckResponse, error) {
	count, err := s.employeeRepo.CountActiveByCompanyID(ctx, companyID)
	if err != nil {
		return billing.SubscriptionCheckResponse{}, fmt.Errorf("failed to count active employees: %w", err)
	}

	c, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return billing.SubscriptionCheckResponse{}, err
	}

	resp := billing.SubscriptionCheckResponse{
		EmployeeCount: count,
		Status:        string(c.SubscriptionStatus),
		Plan:          string(c.SubscriptionPlan),
	}
	if c.LastPaymentDate != nil {
		t := c.LastPaymentDate.Format(time.RFC3339)
		resp.LastPaymentDate = &t
	}
	if c.NextBillingDate != nil {
		t := c.NextBillingDate.Format(time.RFC3339)
		resp.NextBillingDate = &t
	}

	if count > billing.FreeEmployeeLimit {
		paidEmployees, amount := billing.AmountDueFor(count)
		resp.PaidEmployees = paidEmployees
		resp.Amount = amount
		resp.RequiresPayment = !c.HasPaidSubscription()
	}

	return resp, nil
}

// CreateCheckout implements billing.Service.
func (s *BillingServiceImpl) CreateCheckout(ctx context.Context, req billing.CreateCheckoutRequest) (billing.CheckoutSession, error) {
	if err := req.Validate(); err != nil {
		return billing.CheckoutSession{}, err
	}
	if req.EmployeeCount <= billing.FreeEmployeeLimit {
		return billing.CheckoutSession{}, billing.ErrPaymentNotRequired
	}

	c, err := s.companyRepo.GetByID(ctx, req.CompanyID)
	if err != nil {
		return billing.CheckoutSession{}, err
	}

	paidEmployees, amount := billing.AmountDueFor(req.EmployeeCount)
	if req.Amount != nil && req.Amount.IsPositive() {
		amount = *req.Amount
	}

	email := ""
	if c.Email != nil {
		email = *c.Email
	}

	session, err := s.payments.CreateCheckout(ctx, payment.CheckoutRequest{
		TransactionID: fmt.Sprintf("skellio_%s_%d", req.CompanyID, s.now().UnixMilli()),
		CompanyID:     req.CompanyID,
		CustomerEmail: email,
		Amount:        amount,
		Currency:      "USD",
		Description:   fmt.Sprintf("Monthly subscription for %d employees above the free tier", paidEmployees),
		PaidEmployees: paidEmployees,
	})
	if err != nil {
		return billing.CheckoutSession{}, fmt.Errorf("failed to create checkout session: %w", err)
	}

	if session.IsMock {
		s.logger.WarnContext(ctx, "payment processor credentials absent, issued mock checkout session",
			slog.String("company_id", req.CompanyID),
			slog.String("session_id", session.ID),
		)
	}

	return billing.CheckoutSession{
		ID:        session.ID,
		CompanyID: req.CompanyID,
		Amount:    session.Amount,
		Currency:  session.Currency,
		Status:    session.Status,
		IsMock:    session.IsMock,
	}, nil
}

// HandleWebhook implements billing.Service.
// Each event maps to one absolute subscription state, so replaying a
// notification lands on the same state.
func (s *BillingServiceImpl) HandleWebhook(ctx context.Context, req billing.WebhookRequest) error {
	if req.Data.CompanyID == "" {
		return billing.ErrMissingCompanyID
	}

	switch req.Event {
	case billing.EventPaymentSucceeded:
		now := s.now()
		next := now.Add(billingPeriod)
		status := company.SubscriptionStatusActive
		plan := company.SubscriptionPlanGrowth
		if err := s.companyRepo.UpdateSubscription(ctx, req.Data.CompanyID, company.SubscriptionPatch{
			Status:          &status,
			Plan:            &plan,
			LastPaymentDate: &now,
			NextBillingDate: &next,
		}); err != nil {
			return fmt.Errorf("failed to activate subscription: %w", err)
		}
		s.logger.InfoContext(ctx, "subscription activated",
			slog.String("company_id", req.Data.CompanyID),
			slog.Time("next_billing_date", next),
		)

	case billing.EventPaymentFailed:
		status := company.SubscriptionStatusPaymentFailed
		if err := s.companyRepo.UpdateSubscription(ctx, req.Data.CompanyID, company.SubscriptionPatch{
			Status: &status,
		}); err != nil {
			return fmt.Errorf("failed to record payment failure: %w", err)
		}
		s.logger.WarnContext(ctx, "subscription payment failed",
			slog.String("company_id", req.Data.CompanyID),
		)

	case billing.EventSubscriptionCancelled:
		status := company.SubscriptionStatusCancelled
		plan := company.SubscriptionPlanFree
		if err := s.companyRepo.UpdateSubscription(ctx, req.Data.CompanyID, company.SubscriptionPatch{
			Status: &status,
			Plan:   &plan,
		}); err != nil {
			return fmt.Errorf("failed to cancel subscription: %w", err)
		}
		s.logger.InfoContext(ctx, "subscription cancelled",
			slog.String("company_id", req.Data.CompanyID),
		)

	default:
		s.logger.InfoContext(ctx, "ignoring unknown webhook event",
			slog.String("event", string(req.Event)),
			slog.String("company_id", req.Data.CompanyID),
		)
	}

	return nil
}
