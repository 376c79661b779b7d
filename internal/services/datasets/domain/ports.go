package domain

import (
	"context"
	"time"
)

// ReaderPort is consumed by report handlers and other modules
type ReaderPort interface {
	Pending(ctx context.Context) ([]PendingApplication, error)
	Consumers(ctx context.Context) ([]ConsumerBucket, error)
	Dockets(ctx context.Context) ([]Docket, error)
	Collections(ctx context.Context) ([]CollectionTxn, error)
	Performance(ctx context.Context) ([]PerformanceMetric, error)
	Offices(ctx context.Context) ([]OfficeRow, error)
}

// SyncPort is consumed by the background sweep worker
type SyncPort interface {
	Stale(ctx context.Context, name string) (bool, error)
	Refresh(ctx context.Context, name string) error
}

// AgesPort reports per dataset snapshot timestamps for health surfaces
type AgesPort interface {
	Ages(ctx context.Context) map[string]time.Time
}

// UpdateEvent announces a refreshed dataset to anyone listening
// fire and forget; slow listeners miss events rather than block the sync
type UpdateEvent struct {
	ID      string    `json:"id"`
	Dataset string    `json:"dataset"`
	At      time.Time `json:"at"`
}
