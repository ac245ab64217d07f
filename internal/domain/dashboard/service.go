package dashboard

import "context"

type DashboardService interface {
	Summary(ctx context.Context, companyID string) (Summary, error)
}
