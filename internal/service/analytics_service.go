package service

import (
	"context"
	"time"

	"trackhq/trackhq-server/internal/analytics"
	"trackhq/trackhq-server/internal/catalog"
	"trackhq/trackhq-server/internal/repository"
)

// AnalyticsService recomputes derived statistics from the active profile's
// workout list on every request.
type AnalyticsService interface {
	Stats(ctx context.Context, timeRange analytics.TimeRange) (*analytics.Stats, error)
}

type analyticsService struct {
	records repository.RecordRepository
	now     func() time.Time
}

// NewAnalyticsService creates a new instance of analyticsService.
func NewAnalyticsService(records repository.RecordRepository) AnalyticsService {
	return &analyticsService{
		records: records,
		now:     time.Now,
	}
}

func (s *analyticsService) Stats(ctx context.Context, timeRange analytics.TimeRange) (*analytics.Stats, error) {
	workouts, err := s.records.ListWorkouts(ctx)
	if err != nil {
		return nil, err
	}
	stats := analytics.Calculate(workouts, timeRange, s.now(), catalog.ByID, catalog.DisplayCategory)
	return &stats, nil
}
