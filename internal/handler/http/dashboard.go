package http

import (
	"net/http"

	"github.com/skellio/hr-backend-go/internal/domain/dashboard"
	"github.com/skellio/hr-backend-go/internal/handler/http/middleware"
	"github.com/skellio/hr-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// Summary implements DashboardHandler
func (h *dashboardHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	companyID := middleware.CompanyID(r.Context())
	if companyID == "" {
		response.Unauthorized(w, "No company associated with this token")
		return
	}

	result, err := h.dashboardService.Summary(r.Context(), companyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
