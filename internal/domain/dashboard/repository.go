package dashboard

import (
	"context"
	"time"
)

// DashboardRepository defines the count queries behind the dashboard
type DashboardRepository interface {
	// CountEmployees returns the total number of employees
	CountEmployees(ctx context.Context) (int64, error)

	// CountAttendances returns the total number of attendance records
	CountAttendances(ctx context.Context) (int64, error)

	// CountAttendancesByDateAndStatus counts records on a single date with
	// the given status
	CountAttendancesByDateAndStatus(ctx context.Context, date time.Time, status string) (int64, error)
}
