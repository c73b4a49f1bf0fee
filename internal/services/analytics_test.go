package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	appErrors "github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/errors"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/models"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/repositories/mocks"
	service "github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryCache is a cache.Cache backed by a map, round-tripping values through
// JSON the way the Redis implementation does.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	getErr  error
	setErr  error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (c *memoryCache) Get(_ context.Context, key string, value any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.getErr != nil {
		return false, c.getErr
	}

	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}

	return true, json.Unmarshal(raw, value)
}

func (c *memoryCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.setErr != nil {
		return c.setErr
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	c.entries[key] = raw

	return nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)

	return nil
}

func (c *memoryCache) Close() error { return nil }

func TestDashboardStats_CacheAside(t *testing.T) {
	// Arrange
	mockRepo := mocks.NewAnalyticsRepository(t)
	testCache := newMemoryCache()
	analyticsService := service.NewAnalyticsService(mockRepo, testCache)
	ctx := context.Background()

	stats := &models.DashboardStats{
		TotalProducts: 120,
		TotalOrders:   34,
		TotalSales:    decimal.RequireFromString("2480.50"),
	}

	// The repository must be hit exactly once; the second call is served from
	// the cache.
	mockRepo.On("DashboardStats", ctx).Return(stats, nil).Once()

	// Act
	first, err := analyticsService.DashboardStats(ctx)
	require.NoError(t, err)

	second, err := analyticsService.DashboardStats(ctx)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, 120, first.TotalProducts)
	assert.Equal(t, 120, second.TotalProducts)
	assert.True(t, second.TotalSales.Equal(stats.TotalSales))
}

func TestDashboardStats_CacheFailureFallsThrough(t *testing.T) {
	// Arrange
	mockRepo := mocks.NewAnalyticsRepository(t)
	testCache := newMemoryCache()
	testCache.getErr = errors.New("redis: connection refused")
	testCache.setErr = errors.New("redis: connection refused")
	analyticsService := service.NewAnalyticsService(mockRepo, testCache)
	ctx := context.Background()

	stats := &models.DashboardStats{TotalProducts: 7}
	mockRepo.On("DashboardStats", ctx).Return(stats, nil).Twice()

	// Act
	first, err := analyticsService.DashboardStats(ctx)
	require.NoError(t, err)

	second, err := analyticsService.DashboardStats(ctx)
	require.NoError(t, err)

	// Assert: a broken cache degrades to repository reads, never to errors.
	assert.Equal(t, 7, first.TotalProducts)
	assert.Equal(t, 7, second.TotalProducts)
}

func TestSalesByDay_WindowClamping(t *testing.T) {
	// Arrange
	mockRepo := mocks.NewAnalyticsRepository(t)
	analyticsService := service.NewAnalyticsService(mockRepo, newMemoryCache())
	ctx := context.Background()

	points := []*models.SalesPoint{{Date: "2025-03-01", Total: decimal.RequireFromString("120.00"), Count: 3}}

	// Out-of-range windows fall back to the 30-day default.
	mockRepo.On("SalesByDay", ctx, 30).Return(points, nil).Once()

	// Act
	result, err := analyticsService.SalesByDay(ctx, 9000)

	// Assert
	assert.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestTopProducts_LimitClamping(t *testing.T) {
	// Arrange
	mockRepo := mocks.NewAnalyticsRepository(t)
	analyticsService := service.NewAnalyticsService(mockRepo, newMemoryCache())
	ctx := context.Background()

	mockRepo.On("TopProducts", ctx, 5).Return([]*models.TopProduct{}, nil).Once()

	// Act
	_, err := analyticsService.TopProducts(ctx, -3)

	// Assert
	assert.NoError(t, err)
}

func TestRecentActivity_RepositoryError(t *testing.T) {
	// Arrange
	mockRepo := mocks.NewAnalyticsRepository(t)
	analyticsService := service.NewAnalyticsService(mockRepo, newMemoryCache())
	ctx := context.Background()

	mockRepo.On("RecentActivity", ctx, 10).Return(nil, errors.New("connection refused")).Once()

	// Act
	activity, err := analyticsService.RecentActivity(ctx, 10)

	// Assert
	assert.Nil(t, activity)
	require.Error(t, err)

	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
}

func TestAnalytics_NilCache(t *testing.T) {
	// Arrange
	mockRepo := mocks.NewAnalyticsRepository(t)
	analyticsService := service.NewAnalyticsService(mockRepo, nil)
	ctx := context.Background()

	mockRepo.On("AppointmentStats", ctx).Return(&models.AppointmentStats{Total: 4}, nil).Once()

	// Act
	stats, err := analyticsService.AppointmentStats(ctx)

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 4, stats.Total)
}
