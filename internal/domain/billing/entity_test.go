package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountDueFor(t *testing.T) {
	tests := []struct {
		name          string
		employeeCount int
		paidEmployees int
		amount        string
	}{
		{name: "empty company", employeeCount: 0, paidEmployees: 0, amount: "0.00"},
		{name: "at free limit", employeeCount: 10, paidEmployees: 0, amount: "0.00"},
		{name: "first paid seat", employeeCount: 11, paidEmployees: 1, amount: "5.00"},
		{name: "ten paid seats", employeeCount: 20, paidEmployees: 10, amount: "50.00"},
		{name: "large company", employeeCount: 110, paidEmployees: 100, amount: "500.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paid, amount := AmountDueFor(tt.employeeCount)
			assert.Equal(t, tt.paidEmployees, paid)
			assert.Equal(t, tt.amount, amount.StringFixed(2))
		})
	}
}
