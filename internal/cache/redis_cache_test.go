package cache_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/cache"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/config"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dashboardDoc struct {
	TotalOrders int    `json:"total_orders"`
	TopCategory string `json:"top_category"`
}

func setup(t *testing.T) (cache.Cache, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	cfg := &config.Analytics{CacheTTL: time.Minute}

	return cache.NewRedisCache(client, cfg), mock
}

func TestGet(t *testing.T) {
	ctx := t.Context()
	testKey := "analytics:dashboard"
	testValue := dashboardDoc{TotalOrders: 42, TopCategory: "vitamins"}
	jsonData, err := json.Marshal(testValue)
	require.NoError(t, err)

	t.Run("Success - Key Found", func(t *testing.T) {
		redisCache, mock := setup(t)

		var result dashboardDoc

		mock.ExpectGet(testKey).SetVal(string(jsonData))

		found, err := redisCache.Get(ctx, testKey, &result)

		require.NoError(t, err, "Get should not return an error on success")
		assert.True(t, found, "Get should return found=true when key exists")
		assert.Equal(t, testValue, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Key Missing", func(t *testing.T) {
		redisCache, mock := setup(t)

		var result dashboardDoc

		mock.ExpectGet(testKey).RedisNil()

		found, err := redisCache.Get(ctx, testKey, &result)

		require.NoError(t, err, "A cache miss is not an error")
		assert.False(t, found)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		redisCache, mock := setup(t)

		var result dashboardDoc

		mock.ExpectGet(testKey).SetErr(errors.New("connection refused"))

		found, err := redisCache.Get(ctx, testKey, &result)

		require.Error(t, err)
		assert.False(t, found)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Corrupt Payload", func(t *testing.T) {
		redisCache, mock := setup(t)

		var result dashboardDoc

		mock.ExpectGet(testKey).SetVal("{not json")

		found, err := redisCache.Get(ctx, testKey, &result)

		require.Error(t, err)
		assert.False(t, found)
		assert.ErrorContains(t, err, "unmarshal")
	})
}

func TestSet(t *testing.T) {
	ctx := t.Context()
	testKey := "analytics:dashboard"
	testValue := dashboardDoc{TotalOrders: 42, TopCategory: "vitamins"}
	jsonData, err := json.Marshal(testValue)
	require.NoError(t, err)

	t.Run("Success - Explicit TTL", func(t *testing.T) {
		redisCache, mock := setup(t)

		mock.ExpectSet(testKey, jsonData, 5*time.Minute).SetVal("OK")

		err := redisCache.Set(ctx, testKey, testValue, 5*time.Minute)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Default TTL When Unset", func(t *testing.T) {
		redisCache, mock := setup(t)

		mock.ExpectSet(testKey, jsonData, time.Minute).SetVal("OK")

		err := redisCache.Set(ctx, testKey, testValue, 0)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		redisCache, mock := setup(t)

		mock.ExpectSet(testKey, jsonData, time.Minute).SetErr(errors.New("connection refused"))

		err := redisCache.Set(ctx, testKey, testValue, time.Minute)

		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDelete(t *testing.T) {
	ctx := t.Context()
	testKey := "analytics:dashboard"

	t.Run("Success - Delete Key", func(t *testing.T) {
		redisCache, mock := setup(t)

		mock.ExpectDel(testKey).SetVal(1)

		err := redisCache.Delete(ctx, testKey)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		redisCache, mock := setup(t)

		mock.ExpectDel(testKey).SetErr(errors.New("connection refused"))

		err := redisCache.Delete(ctx, testKey)

		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
