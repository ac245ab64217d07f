package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/skellio/hr-backend-go/internal/domain/billing"
	"github.com/skellio/hr-backend-go/internal/handler/http/middleware"
	"github.com/skellio/hr-backend-go/internal/handler/http/response"
	"github.com/skellio/hr-backend-go/internal/pkg/payment"
)

type BillingHandler interface {
	CheckSubscription(w http.ResponseWriter, r *http.Request)
	CreateCheckout(w http.ResponseWriter, r *http.Request)
	Webhook(w http.ResponseWriter, r *http.Request)
}

type billingHandlerImpl struct {
	billingService billing.Service
	verifier       *payment.WebhookVerifier
}

func NewBillingHandler(billingService billing.Service, verifier *payment.WebhookVerifier) BillingHandler {
	return &billingHandlerImpl{
		billingService: billingService,
		verifier:       verifier,
	}
}

// CheckSubscription implements BillingHandler
func (h *billingHandlerImpl) CheckSubscription(w http.ResponseWriter, r *http.Request) {
	companyID := r.URL.Query().Get("companyId")
	if companyID == "" {
		companyID = middleware.CompanyID(r.Context())
	}
	if companyID == "" {
		response.BadRequest(w, "companyId is required", nil)
		return
	}

	result, err := h.billingService.Check(r.Context(), companyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateCheckout implements BillingHandler
func (h *billingHandlerImpl) CreateCheckout(w http.ResponseWriter, r *http.Request) {
	var req billing.CreateCheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if companyID := middleware.CompanyID(r.Context()); companyID != "" {
		req.CompanyID = companyID
	}

	session, err := h.billingService.CreateCheckout(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checkout session created", session.ToResponse())
}

// Webhook implements BillingHandler. Signature verification happens on
// the raw body before anything is decoded.
func (h *billingHandlerImpl) Webhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		response.BadRequest(w, "Failed to read request body", nil)
		return
	}

	verified := false
	if token := r.Header.Get("X-Callback-Token"); token != "" {
		verified = h.verifier.VerifyToken(token)
	} else if sig := r.Header.Get("X-Signature"); sig != "" {
		verified = h.verifier.VerifyHMACSignature(body, sig)
	}
	if !verified {
		response.HandleError(w, billing.ErrInvalidWebhookSignature)
		return
	}

	var req billing.WebhookRequest
	if err := json.Unmarshal(body, &req); err != nil {
		response.BadRequest(w, "Invalid webhook payload", nil)
		return
	}

	if err := h.billingService.HandleWebhook(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Webhook processed", nil)
}
