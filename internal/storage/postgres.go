package storage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk/internal/config"
)

const kvSchema = `
	CREATE TABLE IF NOT EXISTS kv_entries (
		key        TEXT PRIMARY KEY,
		value      JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`

// Postgres backs the KV with a single kv_entries table over a pgx pool.
// Values stay whole-blob JSON so the last-writer-wins semantics match
// the other backends.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres establishes a connection pool and ensures the schema.
func NewPostgres(ctx context.Context, cfg config.StorageConfig, logger *zap.Logger) (*Postgres, error) {
	if cfg.PostgresDSN == "" {
		return nil, errors.New("storage: POSTGRES_DSN not provided")
	}

	pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	if _, err := pool.Exec(ctx, kvSchema); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info("connected to postgres")
	return &Postgres{pool: pool}, nil
}

// Get fetches the value for key.
func (p *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := p.pool.QueryRow(ctx, `SELECT value FROM kv_entries WHERE key=$1`, key).Scan(&value)
	if err == pgx.ErrNoRows {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Set upserts value under key.
func (p *Postgres) Set(ctx context.Context, key string, value []byte) error {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO kv_entries (key, value, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value=EXCLUDED.value, updated_at=NOW()`,
		key, value)
	return err
}

// Delete removes key; deleting an absent key is a no-op.
func (p *Postgres) Delete(ctx context.Context, key string) error {
	_, err := p.pool.Exec(ctx, `DELETE FROM kv_entries WHERE key=$1`, key)
	return err
}

// Close releases pool resources.
func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}
