package dashboard

import (
	"context"
	"time"
)

// DashboardRepository aggregates counts across the record store.
type DashboardRepository interface {
	// Summary computes the dashboard snapshot for a company as of now.
	Summary(ctx context.Context, companyID string, now time.Time) (Summary, error)
}
