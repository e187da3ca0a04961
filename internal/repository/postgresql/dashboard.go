package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/hrms-lite/hrms-backend-go/internal/domain/dashboard"
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// CountEmployees implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountEmployees(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return total, nil
}

// CountAttendances implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountAttendances(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM attendances`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count attendances: %w", err)
	}
	return total, nil
}

// CountAttendancesByDateAndStatus implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountAttendancesByDateAndStatus(ctx context.Context, date time.Time, status string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COUNT(*) FROM attendances WHERE date = $1 AND status = $2`

	var total int64
	if err := q.QueryRow(ctx, query, date, status).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count attendances for %s/%s: %w", date.Format("2006-01-02"), status, err)
	}
	return total, nil
}
