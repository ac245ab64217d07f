package dashboard

import (
	"context"
	"time"

	"github.com/skellio/hr-backend-go/internal/domain/dashboard"
)

type DashboardServiceImpl struct {
	dashboardRepo dashboard.DashboardRepository
}

func NewDashboardService(dashboardRepo dashboard.DashboardRepository) *DashboardServiceImpl {
	return &DashboardServiceImpl{dashboardRepo: dashboardRepo}
}

// Summary implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Summary(ctx context.Context, companyID string) (dashboard.Summary, error) {
	return s.dashboardRepo.Summary(ctx, companyID, time.Now().UTC())
}
