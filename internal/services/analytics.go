package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/api/middleware"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/cache"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/errors"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/models"
	repository "github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/repositories"
)

const (
	defaultSalesWindowDays = 30
	maxSalesWindowDays     = 365
	defaultTopProducts     = 5
	defaultRecentActivity  = 10
	maxAnalyticsLimit      = 50
)

type AnalyticsService interface {
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
	SalesByDay(ctx context.Context, days int) ([]*models.SalesPoint, error)
	ProductsByCategory(ctx context.Context) ([]*models.CategoryCount, error)
	AppointmentStats(ctx context.Context) (*models.AppointmentStats, error)
	TopProducts(ctx context.Context, limit int) ([]*models.TopProduct, error)
	RecentActivity(ctx context.Context, limit int) ([]*models.Activity, error)
}

type analyticsService struct {
	repo  repository.AnalyticsRepository
	cache cache.Cache
}

func NewAnalyticsService(repo repository.AnalyticsRepository, cache cache.Cache) AnalyticsService {
	return &analyticsService{repo: repo, cache: cache}
}

// cached runs the aggregation behind a cache-aside lookup. Dashboards tolerate
// slightly stale numbers; the aggregations are the expensive part.
func cached[T any](ctx context.Context, s *analyticsService, key string, load func(context.Context) (T, error)) (T, error) {
	logger := middleware.LoggerFromContext(ctx)

	var value T

	if s.cache != nil {
		found, err := s.cache.Get(ctx, key, &value)
		if err != nil {
			logger.Warn("Analytics cache read failed", slog.String("key", key), slog.Any("error", err))
		} else if found {
			return value, nil
		}
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, value, time.Duration(0)); err != nil {
			logger.Warn("Analytics cache write failed", slog.String("key", key), slog.Any("error", err))
		}
	}

	return value, nil
}

func clampLimit(limit, fallback int) int {
	if limit < 1 || limit > maxAnalyticsLimit {
		return fallback
	}

	return limit
}

func (s *analyticsService) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	return cached(ctx, s, "analytics:dashboard", func(ctx context.Context) (*models.DashboardStats, error) {
		stats, err := s.repo.DashboardStats(ctx)
		if err != nil {
			return nil, errors.DatabaseError("Failed to compute dashboard stats").WithError(err)
		}

		return stats, nil
	})
}

func (s *analyticsService) SalesByDay(ctx context.Context, days int) ([]*models.SalesPoint, error) {
	if days < 1 || days > maxSalesWindowDays {
		days = defaultSalesWindowDays
	}

	key := fmt.Sprintf("analytics:sales:%d", days)

	return cached(ctx, s, key, func(ctx context.Context) ([]*models.SalesPoint, error) {
		points, err := s.repo.SalesByDay(ctx, days)
		if err != nil {
			return nil, errors.DatabaseError("Failed to compute sales").WithError(err)
		}

		return points, nil
	})
}

func (s *analyticsService) ProductsByCategory(ctx context.Context) ([]*models.CategoryCount, error) {
	return cached(ctx, s, "analytics:products-by-category", func(ctx context.Context) ([]*models.CategoryCount, error) {
		counts, err := s.repo.ProductsByCategory(ctx)
		if err != nil {
			return nil, errors.DatabaseError("Failed to compute category counts").WithError(err)
		}

		return counts, nil
	})
}

func (s *analyticsService) AppointmentStats(ctx context.Context) (*models.AppointmentStats, error) {
	return cached(ctx, s, "analytics:appointments", func(ctx context.Context) (*models.AppointmentStats, error) {
		stats, err := s.repo.AppointmentStats(ctx)
		if err != nil {
			return nil, errors.DatabaseError("Failed to compute appointment stats").WithError(err)
		}

		return stats, nil
	})
}

func (s *analyticsService) TopProducts(ctx context.Context, limit int) ([]*models.TopProduct, error) {
	limit = clampLimit(limit, defaultTopProducts)

	key := fmt.Sprintf("analytics:top-products:%d", limit)

	return cached(ctx, s, key, func(ctx context.Context) ([]*models.TopProduct, error) {
		products, err := s.repo.TopProducts(ctx, limit)
		if err != nil {
			return nil, errors.DatabaseError("Failed to compute top products").WithError(err)
		}

		return products, nil
	})
}

func (s *analyticsService) RecentActivity(ctx context.Context, limit int) ([]*models.Activity, error) {
	limit = clampLimit(limit, defaultRecentActivity)

	key := fmt.Sprintf("analytics:recent-activity:%d", limit)

	return cached(ctx, s, key, func(ctx context.Context) ([]*models.Activity, error) {
		activity, err := s.repo.RecentActivity(ctx, limit)
		if err != nil {
			return nil, errors.DatabaseError("Failed to fetch recent activity").WithError(err)
		}

		return activity, nil
	})
}
