// Package store provides the local snapshot cache seam and its backends
package store

import (
	"context"

	"griddesk/internal/platform/logger"
)

// KV is the key-value surface the snapshot cache is built on
// Get reports a miss with ok=false; it never treats a miss as an error
type KV interface {
	Get(ctx context.Context, key string) (val []byte, ok bool, err error)
	Set(ctx context.Context, key string, val []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}

// Closer is any backend that holds resources
type Closer interface{ Close() error }

// Pinger is any seam that can report readiness
type Pinger interface{ Ping(context.Context) error }

// Store is the facade over the configured backend
// zero value is safe but does nothing
type Store struct {
	Log logger.Logger

	// KV is the snapshot cache backend, nil when disabled
	KV KV
}

// Config selects and configures the backend
type Config struct {
	// Path is the sqlite file location; ":memory:" or "" selects the
	// in-memory backend (useful for tests and ephemeral runs)
	Path string

	// MaxBytes caps the total bytes held across all snapshots; 0 means no
	// cap. Writes that would exceed the budget surface ErrFull so callers
	// can run their eviction policy and retry into the freed room
	MaxBytes int64
}

// Option mutates the store during Open
type Option func(*Store) error

// WithLogger attaches a logger used by backends
func WithLogger(l logger.Logger) Option {
	return func(s *Store) error {
		s.Log = l
		return nil
	}
}

// Open constructs a Store with the requested backend
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}

	if cfg.Path == "" || cfg.Path == ":memory:" {
		s.KV = NewMemKV(cfg.MaxBytes)
		return s, nil
	}

	kv, err := OpenSQLiteKV(ctx, cfg.Path, cfg.MaxBytes)
	if err != nil {
		return nil, err
	}
	s.KV = kv
	return s, nil
}

// Close releases backend resources
func (s *Store) Close(ctx context.Context) error {
	if c, ok := s.KV.(Closer); ok {
		return c.Close()
	}
	return nil
}

// Ping reports backend readiness
func (s *Store) Ping(ctx context.Context) error {
	if p, ok := s.KV.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}
