package http

import (
	"encoding/json"
	"net/http"

	"github.com/skellio/hr-backend-go/internal/domain/company"
	"github.com/skellio/hr-backend-go/internal/handler/http/middleware"
	"github.com/skellio/hr-backend-go/internal/handler/http/response"
)

type CompanyHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	GetMy(w http.ResponseWriter, r *http.Request)
	UpdateMy(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type companyHandlerImpl struct {
	companyService company.CompanyService
}

func NewCompanyHandler(companyService company.CompanyService) CompanyHandler {
	return &companyHandlerImpl{companyService: companyService}
}

// Register implements CompanyHandler. Registration is idempotent on
// the company name; a retried signup returns the existing record.
func (h *companyHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req company.CreateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, created, err := h.companyService.CreateOrGet(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if created {
		response.Created(w, "Company registered", result.ToResponse())
		return
	}
	response.Success(w, result.ToResponse())
}

// GetMy implements CompanyHandler
func (h *companyHandlerImpl) GetMy(w http.ResponseWriter, r *http.Request) {
	companyID := middleware.CompanyID(r.Context())
	if companyID == "" {
		response.Unauthorized(w, "No company associated with this token")
		return
	}

	result, err := h.companyService.GetByID(r.Context(), companyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateMy implements CompanyHandler
func (h *companyHandlerImpl) UpdateMy(w http.ResponseWriter, r *http.Request) {
	companyID := middleware.CompanyID(r.Context())
	if companyID == "" {
		response.Unauthorized(w, "No company associated with this token")
		return
	}

	var req company.UpdateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.companyService.Update(r.Context(), companyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements CompanyHandler
func (h *companyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.companyService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
