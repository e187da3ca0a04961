package dashboard

import "context"

// DashboardService computes the dashboard counters
type DashboardService interface {
	// GetStats recomputes all counters on every call; nothing is cached
	GetStats(ctx context.Context) (StatsResponse, error)
}
