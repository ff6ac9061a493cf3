package infrastructure

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/architeacher/svc-order-events/internal/config"
)

func TestDSN(t *testing.T) {
	t.Parallel()

	dsn := DSN(config.StorageConfig{
		Host:           "postgres",
		Port:           5432,
		Database:       "orders",
		Username:       "app",
		Password:       "p@ss word",
		SSLMode:        "disable",
		ConnectTimeout: 10 * time.Second,
	})

	parsed, err := url.Parse(dsn)
	require.NoError(t, err)

	password, ok := parsed.User.Password()
	require.True(t, ok)

	assert.Equal(t, "postgres", parsed.Scheme)
	assert.Equal(t, "postgres:5432", parsed.Host)
	assert.Equal(t, "/orders", parsed.Path)
	assert.Equal(t, "app", parsed.User.Username())
	assert.Equal(t, "p@ss word", password)
	assert.Equal(t, "disable", parsed.Query().Get("sslmode"))
	assert.Equal(t, "10", parsed.Query().Get("connect_timeout"))
}

func TestStorage_ClosedRefusesConnections(t *testing.T) {
	t.Parallel()

	storage, err := NewStorage(config.StorageConfig{
		Host:     "localhost",
		Port:     5432,
		Database: "orders",
		Username: "app",
		SSLMode:  "disable",
	})
	require.NoError(t, err)

	_, err = storage.GetDB()
	require.NoError(t, err)

	require.NoError(t, storage.Close())
	require.NoError(t, storage.Close())

	_, err = storage.GetDB()
	assert.ErrorIs(t, err, errStorageClosed)
	assert.ErrorIs(t, storage.Ping(t.Context()), errStorageClosed)
}
