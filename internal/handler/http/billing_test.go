package http

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skellio/hr-backend-go/internal/domain/billing"
	"github.com/skellio/hr-backend-go/internal/pkg/payment"
)

const testWebhookToken = "whsec_test_token"

type stubBillingService struct {
	billing.Service

	handled    []billing.WebhookRequest
	webhookErr error
}

func (s *stubBillingService) HandleWebhook(ctx context.Context, req billing.WebhookRequest) error {
	if s.webhookErr != nil {
		return s.webhookErr
	}
	s.handled = append(s.handled, req)
	return nil
}

func webhookBody(t *testing.T, event, companyID string) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"event": event,
		"data":  map[string]any{"companyId": companyID},
	})
	require.NoError(t, err)
	return body
}

func postWebhook(t *testing.T, handler BillingHandler, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payment/webhook", bytes.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	handler.Webhook(rec, req)
	return rec
}

func TestBillingHandler_Webhook_MissingSignatureRejected(t *testing.T) {
	svc := &stubBillingService{}
	handler := NewBillingHandler(svc, payment.NewWebhookVerifier(testWebhookToken))

	rec := postWebhook(t, handler, webhookBody(t, "payment.succeeded", "company-1"), nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, svc.handled)
}

func TestBillingHandler_Webhook_WrongTokenRejected(t *testing.T) {
	svc := &stubBillingService{}
	handler := NewBillingHandler(svc, payment.NewWebhookVerifier(testWebhookToken))

	rec := postWebhook(t, handler, webhookBody(t, "payment.succeeded", "company-1"), map[string]string{
		"X-Callback-Token": "whsec_wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, svc.handled)
}

func TestBillingHandler_Webhook_ValidToken(t *testing.T) {
	svc := &stubBillingService{}
	handler := NewBillingHandler(svc, payment.NewWebhookVerifier(testWebhookToken))

	rec := postWebhook(t, handler, webhookBody(t, "payment.succeeded", "company-1"), map[string]string{
		"X-Callback-Token": testWebhookToken,
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, svc.handled, 1)
	assert.Equal(t, billing.EventPaymentSucceeded, svc.handled[0].Event)
	assert.Equal(t, "company-1", svc.handled[0].Data.CompanyID)
}

func TestBillingHandler_Webhook_ValidHMACSignature(t *testing.T) {
	svc := &stubBillingService{}
	handler := NewBillingHandler(svc, payment.NewWebhookVerifier(testWebhookToken))

	body := webhookBody(t, "subscription.cancelled", "company-1")
	mac := hmac.New(sha256.New, []byte(testWebhookToken))
	mac.Write(body)
	signature := hex.EncodeToString(mac.Sum(nil))

	rec := postWebhook(t, handler, body, map[string]string{"X-Signature": signature})

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, svc.handled, 1)
	assert.Equal(t, billing.EventSubscriptionCancelled, svc.handled[0].Event)
}

func TestBillingHandler_Webhook_TamperedBodyFailsHMAC(t *testing.T) {
	svc := &stubBillingService{}
	handler := NewBillingHandler(svc, payment.NewWebhookVerifier(testWebhookToken))

	body := webhookBody(t, "payment.succeeded", "company-1")
	mac := hmac.New(sha256.New, []byte(testWebhookToken))
	mac.Write(body)
	signature := hex.EncodeToString(mac.Sum(nil))

	tampered := webhookBody(t, "payment.succeeded", "company-other")
	rec := postWebhook(t, handler, tampered, map[string]string{"X-Signature": signature})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, svc.handled)
}

func TestBillingHandler_Webhook_MissingCompanyID(t *testing.T) {
	svc := &stubBillingService{webhookErr: billing.ErrMissingCompanyID}
	handler := NewBillingHandler(svc, payment.NewWebhookVerifier(testWebhookToken))

	rec := postWebhook(t, handler, webhookBody(t, "payment.succeeded", ""), map[string]string{
		"X-Callback-Token": testWebhookToken,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
