package payment

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Client talks to the external payment processor's checkout API. When
// credentials are absent it returns clearly flagged mock sessions so
// the rest of the system can be exercised without live payment access.
type Client struct {
	apiURL       string
	apiKey       string
	apiSecret    string
	merchantCode string
	baseURL      string
	httpClient   *http.Client
}

func NewClient(apiURL, apiKey, apiSecret, merchantCode, appBaseURL string) *Client {
	return &Client{
		apiURL:       apiURL,
		apiKey:       apiKey,
		apiSecret:    apiSecret,
		merchantCode: merchantCode,
		baseURL:      appBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// IsMockMode reports whether live credentials are missing.
func (c *Client) IsMockMode() bool {
	return c.apiKey == "" || c.apiSecret == "" || c.merchantCode == ""
}

// APIError represents a processor API error.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("payment processor error [%d]: %s", e.StatusCode, e.Body)
}

// CheckoutRequest is the processor-facing session request.
type CheckoutRequest struct {
	TransactionID string
	CompanyID     string
	CustomerEmail string
	Amount        decimal.Decimal
	Currency      string
	Description   string
	PaidEmployees int
}

// CheckoutSession is the processor's session handle.
type CheckoutSession struct {
	ID       string
	Amount   decimal.Decimal
	Currency string
	Status   string
	IsMock   bool
}

type checkoutPayload struct {
	TransactionID string           `json:"transactionId"`
	Callback      callbackURLs     `json:"callback"`
	Payment       paymentBlock     `json:"payment"`
	Customer      customerBlock    `json:"customer"`
	Products      []productBlock   `json:"products"`
}

type callbackURLs struct {
	ReturnURL       string `json:"returnUrl"`
	CancelURL       string `json:"cancelUrl"`
	NotificationURL string `json:"notificationUrl"`
}

type paymentBlock struct {
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Reference string          `json:"reference"`
}

type customerBlock struct {
	Email              string `json:"email,omitempty"`
	MerchantCustomerID string `json:"merchantCustomerId"`
}

type productBlock struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Quantity    int             `json:"quantity"`
	Currency    string          `json:"currency"`
}

type checkoutResponse struct {
	LongID string `json:"longId"`
	Links  struct {
		Self string `json:"self"`
	} `json:"links"`
}

// CreateCheckout opens a checkout session. In mock mode the session is
// generated locally and flagged.
func (c *Client) CreateCheckout(ctx context.Context, req CheckoutRequest) (CheckoutSession, error) {
	if c.IsMockMode() {
		return CheckoutSession{
			ID:       fmt.Sprintf("mock_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8]),
			Amount:   req.Amount,
			Currency: req.Currency,
			Status:   "pending",
			IsMock:   true,
		}, nil
	}

	plural := ""
	if req.PaidEmployees > 1 {
		plural = "s"
	}
	payload := checkoutPayload{
		TransactionID: req.TransactionID,
		Callback: callbackURLs{
			ReturnURL:       c.baseURL + "/payment/success",
			CancelURL:       c.baseURL + "/payment/cancel",
			NotificationURL: c.baseURL + "/api/v1/payment/webhook",
		},
		Payment: paymentBlock{
			Amount:    req.Amount,
			Currency:  req.Currency,
			Reference: fmt.Sprintf("Skellio HR - %d employee%s", req.PaidEmployees, plural),
		},
		Customer: customerBlock{
			Email:              req.CustomerEmail,
			MerchantCustomerID: req.CompanyID,
		},
		Products: []productBlock{
			{
				Name:        "Skellio HR Growth Plan",
				Description: req.Description,
				Amount:      req.Amount,
				Quantity:    1,
				Currency:    req.Currency,
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return CheckoutSession{}, fmt.Errorf("encode checkout payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/checkout", bytes.NewReader(body))
	if err != nil {
		return CheckoutSession{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Basic "+c.authHeader())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return CheckoutSession{}, fmt.Errorf("payment processor request: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		return CheckoutSession{}, &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var out checkoutResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return CheckoutSession{}, fmt.Errorf("decode checkout response: %w", err)
	}

	sessionID := out.LongID
	if sessionID == "" {
		sessionID = out.Links.Self
	}

	return CheckoutSession{
		ID:       sessionID,
		Amount:   req.Amount,
		Currency: req.Currency,
		Status:   "pending",
	}, nil
}

func (c *Client) authHeader() string {
	raw := fmt.Sprintf("%s:%s:%s", c.merchantCode, c.apiKey, c.apiSecret)
	return base64.StdEncoding.EncodeToString([]byte(raw))
}
