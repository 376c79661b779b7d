// Package service contains dataset snapshot workflows
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"griddesk/internal/adapters/ingest/sheets"
	"griddesk/internal/modkit/repokit"
	perr "griddesk/internal/platform/errors"
	"griddesk/internal/platform/logger"
	"griddesk/internal/services/datasets/domain"
	"griddesk/internal/services/datasets/repo"
)

// Provider fetches dataset sheets from the upstream publisher
type Provider interface {
	Fetch(ctx context.Context, name string) (sheets.Sheet, error)
	Probe(ctx context.Context, name string) (sheets.Sheet, error)
}

// Service is the dataset service contract
type Service interface {
	domain.ReaderPort
	domain.SyncPort
	domain.AgesPort

	// Records is the untyped read-through used by typed accessors
	Records(ctx context.Context, name string) ([]domain.Record, error)

	// Events exposes the update notification hub
	Events() *Hub
}

// Svc implements the dataset service
type Svc struct {
	Repo     repo.Repo
	provider Provider
	hub      *Hub
	log      logger.Logger
	now      func() time.Time
}

// New constructs a dataset service
func New(kv repokit.KV, provider Provider) *Svc {
	if provider == nil {
		panic("datasets.Service requires a non nil Provider")
	}
	return &Svc{
		Repo:     repokit.MustBind(repo.KV(), kv),
		provider: provider,
		hub:      NewHub(),
		log:      *logger.Named("datasets"),
		now:      time.Now,
	}
}

// Events exposes the update notification hub
func (s *Svc) Events() *Hub { return s.hub }

// Records returns the dataset's records, read-through the snapshot cache.
// There is no TTL on the read path; only the background sync decides
// freshness.
func (s *Svc) Records(ctx context.Context, name string) ([]domain.Record, error) {
	if snap, ok := s.Repo.Get(ctx, name); ok {
		return snap.Records, nil
	}
	return s.fetchAndCache(ctx, name)
}

// Stale probes the dataset's header plus first row and compares the
// resolved probe field byte for byte with the cached first row
func (s *Svc) Stale(ctx context.Context, name string) (bool, error) {
	snap, ok := s.Repo.Get(ctx, name)
	if !ok {
		// nothing cached, a refresh is always warranted
		return true, nil
	}
	sheet, err := s.provider.Probe(ctx, name)
	if err != nil {
		return false, err
	}
	probed := domain.FromSheet(sheet)

	d := domain.Describe(name)
	var have, want string
	if len(snap.Records) > 0 {
		have = domain.ProbeValue(d, snap.Records[0])
	}
	if len(probed) > 0 {
		want = domain.ProbeValue(d, probed[0])
	}
	return have != want, nil
}

// Refresh re-fetches the dataset, overwrites the snapshot, and emits an
// update event so dependent views may re-read at their leisure
func (s *Svc) Refresh(ctx context.Context, name string) error {
	if _, err := s.fetchAndCache(ctx, name); err != nil {
		return err
	}
	s.hub.Notify(domain.UpdateEvent{
		ID:      uuid.NewString(),
		Dataset: name,
		At:      s.now(),
	})
	return nil
}

// Ages reports the snapshot timestamp per cached dataset
func (s *Svc) Ages(ctx context.Context) map[string]time.Time {
	out := map[string]time.Time{}
	for _, key := range s.Repo.Keys(ctx) {
		if snap, ok := s.Repo.Get(ctx, key); ok {
			out[key] = snap.FetchedAt
		}
	}
	return out
}

func (s *Svc) fetchAndCache(ctx context.Context, name string) ([]domain.Record, error) {
	sheet, err := s.provider.Fetch(ctx, name)
	if err != nil {
		s.log.Warn().Str("dataset", name).Err(err).Msg("dataset fetch failed")
		return nil, perr.Wrapf(err, perr.ErrorCodeUpstream, "dataset %s fetch", name)
	}
	recs := domain.FromSheet(sheet)
	s.Repo.Set(ctx, name, repo.Snapshot{Records: recs, FetchedAt: s.now()})
	return recs, nil
}

// typed accessors

// Pending returns the pending applications dataset
func (s *Svc) Pending(ctx context.Context) ([]domain.PendingApplication, error) {
	recs, err := s.Records(ctx, domain.DatasetPending)
	if err != nil {
		return nil, err
	}
	return domain.ParsePending(recs), nil
}

// Consumers returns the consumer category dataset
func (s *Svc) Consumers(ctx context.Context) ([]domain.ConsumerBucket, error) {
	recs, err := s.Records(ctx, domain.DatasetConsumers)
	if err != nil {
		return nil, err
	}
	return domain.ParseConsumers(recs), nil
}

// Dockets returns the grievance docket dataset
func (s *Svc) Dockets(ctx context.Context) ([]domain.Docket, error) {
	recs, err := s.Records(ctx, domain.DatasetDockets)
	if err != nil {
		return nil, err
	}
	return domain.ParseDockets(recs), nil
}

// Collections returns the revenue collection dataset
func (s *Svc) Collections(ctx context.Context) ([]domain.CollectionTxn, error) {
	recs, err := s.Records(ctx, domain.DatasetCollections)
	if err != nil {
		return nil, err
	}
	return domain.ParseCollections(recs), nil
}

// Performance returns the KPI metric dataset
func (s *Svc) Performance(ctx context.Context) ([]domain.PerformanceMetric, error) {
	recs, err := s.Records(ctx, domain.DatasetPerformance)
	if err != nil {
		return nil, err
	}
	return domain.ParsePerformance(recs), nil
}

// Offices returns the office directory dataset
func (s *Svc) Offices(ctx context.Context) ([]domain.OfficeRow, error) {
	recs, err := s.Records(ctx, domain.DatasetOffices)
	if err != nil {
		return nil, err
	}
	return domain.ParseOffices(recs), nil
}
