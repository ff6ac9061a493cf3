package repos

import (
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/architeacher/svc-order-events/internal/config"
	"github.com/architeacher/svc-order-events/internal/domain"
	"github.com/architeacher/svc-order-events/internal/infrastructure"
)

func setupCacheRepository(t *testing.T) (*CacheRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	cfg := config.CacheConfig{
		Addr:          mr.Addr(),
		PoolSize:      2,
		DialTimeout:   time.Second,
		ReadTimeout:   time.Second,
		WriteTimeout:  time.Second,
		PoolTimeout:   time.Second,
		DefaultExpiry: time.Hour,
	}

	logger := infrastructure.NewTestLogger()
	client := infrastructure.NewKeyDBClient(cfg, logger)

	t.Cleanup(func() { _ = client.Close() })

	return NewCacheRepository(client, cfg, logger), mr
}

func testOrder(id int64) *domain.Order {
	return &domain.Order{
		ID:        id,
		Mode:      domain.OrderModeApproved,
		UserID:    7,
		ProductID: 3,
		CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestCacheRepository_SetAndFind(t *testing.T) {
	t.Parallel()

	repo, mr := setupCacheRepository(t)

	require.NoError(t, repo.Set(t.Context(), testOrder(42)))

	assert.True(t, mr.Exists("order:42"))
	assert.Equal(t, time.Hour, mr.TTL("order:42"))

	order, err := repo.Find(t.Context(), 42)
	require.NoError(t, err)
	assert.Equal(t, testOrder(42), order)
}

func TestCacheRepository_FindMiss(t *testing.T) {
	t.Parallel()

	repo, _ := setupCacheRepository(t)

	order, err := repo.Find(t.Context(), 1)

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestCacheRepository_Expiry(t *testing.T) {
	t.Parallel()

	repo, mr := setupCacheRepository(t)

	require.NoError(t, repo.Set(t.Context(), testOrder(42)))

	mr.FastForward(2 * time.Hour)

	_, err := repo.Find(t.Context(), 42)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestCacheRepository_Delete(t *testing.T) {
	t.Parallel()

	repo, mr := setupCacheRepository(t)

	require.NoError(t, repo.Set(t.Context(), testOrder(42)))
	require.NoError(t, repo.Delete(t.Context(), 42))
	require.NoError(t, repo.Delete(t.Context(), 42))

	assert.False(t, mr.Exists("order:42"))
}

func TestCacheRepository_UnreadableEntryIsDropped(t *testing.T) {
	t.Parallel()

	repo, mr := setupCacheRepository(t)

	require.NoError(t, mr.Set("order:42", "{not json"))

	_, err := repo.Find(t.Context(), 42)

	assert.ErrorIs(t, err, domain.ErrCacheMiss)
	assert.False(t, mr.Exists("order:42"))
}

func TestCacheRepository_ServerDown(t *testing.T) {
	t.Parallel()

	repo, mr := setupCacheRepository(t)
	mr.Close()

	_, err := repo.Find(t.Context(), 42)
	assert.ErrorIs(t, err, domain.ErrCacheUnavailable)

	err = repo.Set(t.Context(), testOrder(42))
	assert.ErrorIs(t, err, domain.ErrCacheUnavailable)

	err = repo.Delete(t.Context(), 42)
	assert.ErrorIs(t, err, domain.ErrCacheUnavailable)
}

func TestCacheRepository_WithoutClient(t *testing.T) {
	t.Parallel()

	repo := NewCacheRepository(nil, config.CacheConfig{}, infrastructure.NewTestLogger())

	_, err := repo.Find(t.Context(), 42)
	assert.True(t, errors.Is(err, domain.ErrCacheUnavailable))

	assert.NoError(t, repo.Set(t.Context(), testOrder(42)))
	assert.NoError(t, repo.Delete(t.Context(), 42))
}
