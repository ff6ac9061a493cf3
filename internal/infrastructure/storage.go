package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/architeacher/svc-order-events/internal/config"
)

const postgresDriver = "postgres"

var errStorageClosed = errors.New("storage is closed")

// Storage owns the Postgres connection pool.
type Storage struct {
	cfg config.StorageConfig

	mutex  sync.Mutex
	db     *sqlx.DB
	closed bool
}

func NewStorage(cfg config.StorageConfig) (*Storage, error) {
	db, err := sqlx.Open(postgresDriver, DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return &Storage{
		cfg: cfg,
		db:  db,
	}, nil
}

// DSN renders the lib/pq connection URL for cfg.
func DSN(cfg config.StorageConfig) string {
	query := url.Values{}
	query.Set("sslmode", cfg.SSLMode)

	if cfg.ConnectTimeout > 0 {
		query.Set("connect_timeout", strconv.Itoa(int(cfg.ConnectTimeout.Seconds())))
	}

	dsn := url.URL{
		Scheme:   postgresDriver,
		User:     url.UserPassword(cfg.Username, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:     cfg.Database,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func (s *Storage) GetDB() (*sqlx.DB, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.closed {
		return nil, errStorageClosed
	}

	return s.db, nil
}

// Ping checks that the database answers within the connect timeout.
func (s *Storage) Ping(ctx context.Context) error {
	db, err := s.GetDB()
	if err != nil {
		return err
	}

	if s.cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, s.cfg.ConnectTimeout)
		defer cancel()
	}

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	return nil
}

func (s *Storage) Close() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true

	return s.db.Close()
}
