package storage

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk/internal/config"
)

// Storage keys. Each holds one whole-collection JSON blob; writes are
// last-writer-wins at the granularity of the full value.
const (
	KeySession   = "helpdesk_session"
	KeyTickets   = "helpdesk_tickets"
	KeyInventory = "helpdesk_inventory"
	KeySettings  = "helpdesk_settings"
)

// ErrKeyNotFound reports that a key has no stored value. Callers treat
// it as "use the seed/default", never as a failure.
var ErrKeyNotFound = errors.New("storage: key not found")

// KV is the durable key-value store behind sessions and collections.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Open constructs the KV backend selected by configuration.
func Open(ctx context.Context, cfg config.StorageConfig, logger *zap.Logger) (KV, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return NewMemory(), nil
	case config.DriverFile:
		return NewFile(cfg.FileDir)
	case config.DriverRedis:
		return NewRedis(cfg, logger), nil
	case config.DriverPostgres:
		return NewPostgres(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", cfg.Driver)
	}
}
