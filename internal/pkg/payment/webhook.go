package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// WebhookVerifier checks that inbound webhook calls come from the
// payment processor. Every notification must pass verification before
// any subscription state is mutated.
type WebhookVerifier struct {
	webhookToken string
}

// NewWebhookVerifier creates a new webhook verifier
func NewWebhookVerifier(webhookToken string) *WebhookVerifier {
	return &WebhookVerifier{
		webhookToken: webhookToken,
	}
}

// VerifyToken compares the callback token header against the shared
// webhook token.
func (v *WebhookVerifier) VerifyToken(callbackToken string) bool {
	a := []byte(strings.TrimSpace(callbackToken))
	b := []byte(strings.TrimSpace(v.webhookToken))
	return len(a) == len(b) && subtle.ConstantTimeCompare(a, b) == 1
}

// VerifyHMACSignature verifies an HMAC-SHA256 signature over the raw
// request body (alternative method offered by the processor).
func (v *WebhookVerifier) VerifyHMACSignature(payload []byte, signature string) bool {
	mac := hmac.New(sha256.New, []byte(v.webhookToken))
	mac.Write(payload)
	expectedMAC := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expectedMAC), []byte(signature))
}
