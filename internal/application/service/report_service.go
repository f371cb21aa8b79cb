package service

import (
	"context"
	"time"

	"github.com/atkinsguitar/pos-api/internal/domain/repository"
	"github.com/atkinsguitar/pos-api/pkg/apperror"
)

const defaultTopProductsLimit = 10

// ReportService exposes the sales reports and the dashboard summary.
type ReportService struct {
	analyticsRepo repository.AnalyticsRepository
}

func NewReportService(analyticsRepo repository.AnalyticsRepository) *ReportService {
	return &ReportService{analyticsRepo: analyticsRepo}
}

// parseRange turns inclusive "YYYY-MM-DD" bounds into a half-open time
// range. Empty bounds default to the last 30 days.
func parseRange(start, end string) (time.Time, time.Time, error) {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now

	if start != "" {
		t, err := time.Parse("2006-01-02", start)
		if err != nil {
			return time.Time{}, time.Time{}, apperror.NewBadRequestError("start date must be in YYYY-MM-DD format")
		}
		from = t
	}
	if end != "" {
		t, err := time.Parse("2006-01-02", end)
		if err != nil {
			return time.Time{}, time.Time{}, apperror.NewBadRequestError("end date must be in YYYY-MM-DD format")
		}
		to = t.AddDate(0, 0, 1)
	}
	if !to.After(from) {
		return time.Time{}, time.Time{}, apperror.NewBadRequestError("end date must not be before start date")
	}
	return from, to, nil
}

func (s *ReportService) SalesSummary(ctx context.Context, start, end string) (*repository.SalesSummary, error) {
	from, to, err := parseRange(start, end)
	if err != nil {
		return nil, err
	}
	return s.analyticsRepo.GetSalesSummary(ctx, from, to)
}

func (s *ReportService) TopProducts(ctx context.Context, limit int, start, end string) ([]repository.TopProductResult, error) {
	from, to, err := parseRange(start, end)
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = defaultTopProductsLimit
	}
	return s.analyticsRepo.GetTopProducts(ctx, limit, from, to)
}

func (s *ReportService) DashboardStats(ctx context.Context) (*repository.DashboardStats, error) {
	return s.analyticsRepo.GetDashboardStats(ctx)
}
