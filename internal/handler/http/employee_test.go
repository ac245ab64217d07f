package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skellio/hr-backend-go/internal/domain/billing"
	"github.com/skellio/hr-backend-go/internal/domain/employee"
	"github.com/skellio/hr-backend-go/internal/handler/http/middleware"
	"github.com/skellio/hr-backend-go/internal/pkg/validator"
)

type stubEmployeeService struct {
	employee.EmployeeService

	createErr  error
	createResp employee.EmployeeResponse
	lastCreate employee.CreateEmployeeRequest
}

func (s *stubEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	s.lastCreate = req
	if s.createErr != nil {
		return employee.EmployeeResponse{}, s.createErr
	}
	return s.createResp, nil
}

func deniedDecision() billing.Decision {
	_, amount := billing.AmountDueFor(11)
	return billing.Decision{
		RequiresPayment: true,
		EmployeeCount:   11,
		PaidEmployees:   1,
		AmountDue:       amount,
		Message:         "Adding employee #11 requires an active subscription. The first 10 employees are free.",
	}
}

func postCreateEmployee(t *testing.T, handler EmployeeHandler, companyID string, payload map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/employees", bytes.NewReader(body))
	ctx := context.WithValue(req.Context(), middleware.CompanyIDKey, companyID)
	rec := httptest.NewRecorder()
	handler.CreateEmployee(rec, req.WithContext(ctx))
	return rec
}

func TestEmployeeHandler_Create_PaymentRequiredPayload(t *testing.T) {
	decision := deniedDecision()
	svc := &stubEmployeeService{createErr: &billing.PaymentRequiredError{Decision: decision}}
	handler := NewEmployeeHandler(svc)

	rec := postCreateEmployee(t, handler, "company-1", map[string]any{
		"employee_id": "EMP-011",
		"first_name":  "Eleventh",
	})

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, false, payload["success"])
	assert.Equal(t, "subscription_required", payload["error"])
	assert.Equal(t, decision.Message, payload["message"])
	assert.Equal(t, true, payload["requiresPayment"])
	assert.Equal(t, float64(11), payload["employeeCount"])
	assert.Equal(t, float64(1), payload["paidEmployees"])
	assert.Equal(t, "5.00", payload["amountDue"])
}

func TestEmployeeHandler_Create_TokenCompanyOverridesBody(t *testing.T) {
	svc := &stubEmployeeService{createResp: employee.EmployeeResponse{ID: "employee-1"}}
	handler := NewEmployeeHandler(svc)

	rec := postCreateEmployee(t, handler, "company-token", map[string]any{
		"company_id":  "company-forged",
		"employee_id": "EMP-001",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "company-token", svc.lastCreate.CompanyID)
}

func TestEmployeeHandler_Create_InvalidBody(t *testing.T) {
	handler := NewEmployeeHandler(&stubEmployeeService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/employees", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	handler.CreateEmployee(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEmployeeHandler_Create_ValidationErrorsAreBadRequest(t *testing.T) {
	svc := &stubEmployeeService{createErr: validator.ValidationErrors{
		{Field: "first_name", Message: "first_name is required"},
	}}
	handler := NewEmployeeHandler(svc)

	rec := postCreateEmployee(t, handler, "company-1", map[string]any{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
