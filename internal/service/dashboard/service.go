package dashboard

import (
	"context"
	"time"

	"github.com/hrms-lite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-lite/hrms-backend-go/internal/domain/dashboard"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
}

func NewDashboardService(repo dashboard.DashboardRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
	}
}

// startOfToday returns the server's current date at midnight.
func startOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// GetStats returns the four dashboard counters. Each count is an
// independent query; the counters are fanned out in parallel and are not
// one consistent snapshot.
func (s *DashboardServiceImpl) GetStats(ctx context.Context) (dashboard.StatsResponse, error) {
	today := startOfToday()

	var stats dashboard.StatsResponse

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, err := s.CountEmployees(gCtx)
		if err != nil {
			return err
		}
		stats.TotalEmployees = total
		return nil
	})

	g.Go(func() error {
		total, err := s.CountAttendances(gCtx)
		if err != nil {
			return err
		}
		stats.TotalAttendanceRecords = total
		return nil
	})

	g.Go(func() error {
		present, err := s.CountAttendancesByDateAndStatus(gCtx, today, string(attendance.StatusPresent))
		if err != nil {
			return err
		}
		stats.PresentToday = present
		return nil
	})

	g.Go(func() error {
		absent, err := s.CountAttendancesByDateAndStatus(gCtx, today, string(attendance.StatusAbsent))
		if err != nil {
			return err
		}
		stats.AbsentToday = absent
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.StatsResponse{}, err
	}

	return stats, nil
}
