package store

import (
	"context"
	"sync"

	perr "griddesk/internal/platform/errors"
)

// ErrFull is returned by Set when the backend cannot take the write.
// Callers run their eviction policy and may retry
var ErrFull = perr.Cachef("cache store full")

// MemKV is an in-process KV backend used for tests and ephemeral runs
type MemKV struct {
	mu       sync.RWMutex
	data     map[string][]byte
	used     int64
	maxBytes int64
}

// NewMemKV returns an empty in-memory KV
// maxBytes caps the total bytes held across all keys; 0 disables the cap
func NewMemKV(maxBytes int64) *MemKV {
	return &MemKV{data: make(map[string][]byte), maxBytes: maxBytes}
}

// Get returns the stored value or ok=false on a miss
func (m *MemKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

// Set stores val under key
// the write is rejected with ErrFull when it would push the total stored
// bytes over the budget, so deleting other keys frees room for a retry
func (m *MemKV) Set(_ context.Context, key string, val []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	next := m.used - int64(len(m.data[key])) + int64(len(val))
	if m.maxBytes > 0 && next > m.maxBytes {
		return ErrFull
	}
	cp := make([]byte, len(val))
	copy(cp, val)
	m.data[key] = cp
	m.used = next
	return nil
}

// Delete removes key; absent keys are fine
func (m *MemKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.used -= int64(len(m.data[key]))
	delete(m.data, key)
	return nil
}

// Keys lists every stored key
func (m *MemKV) Keys(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.data))
	for k := range m.data {
		out = append(out, k)
	}
	return out, nil
}
