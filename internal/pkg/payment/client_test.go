package payment

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_MockModeWithoutCredentials(t *testing.T) {
	client := NewClient("", "", "", "", "http://localhost:3000")

	require.True(t, client.IsMockMode())

	session, err := client.CreateCheckout(context.Background(), CheckoutRequest{
		TransactionID: "skellio_company-1_1",
		CompanyID:     "company-1",
		Amount:        decimal.RequireFromString("5.00"),
		Currency:      "USD",
		PaidEmployees: 1,
	})

	require.NoError(t, err)
	assert.True(t, session.IsMock)
	assert.True(t, strings.HasPrefix(session.ID, "mock_"))
	assert.Equal(t, "5.00", session.Amount.StringFixed(2))
	assert.Equal(t, "USD", session.Currency)
}

func TestClient_ConfiguredIsNotMock(t *testing.T) {
	client := NewClient("https://api.processor.test", "key", "secret", "merchant", "http://localhost:3000")

	assert.False(t, client.IsMockMode())
}
