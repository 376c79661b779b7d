// Package syncer sweeps datasets for staleness and refreshes their snapshots
package syncer

import (
	"context"
	"sync"
	"time"

	"griddesk/internal/platform/logger"
	"griddesk/internal/services/datasets/domain"
)

// Config carries runtime knobs for the sweep loop
type Config struct {
	// Every is the sweep interval
	Every time.Duration

	// Datasets limits the sweep; empty means every known dataset
	Datasets []string
}

// Svc is the background sweep worker
type Svc struct {
	sync domain.SyncPort
	cfg  Config
	log  logger.Logger
}

// New constructs a syncer
func New(port domain.SyncPort, cfg Config) *Svc {
	if port == nil {
		panic("syncer requires a non nil SyncPort")
	}
	if cfg.Every <= 0 {
		cfg.Every = 5 * time.Minute
	}
	if len(cfg.Datasets) == 0 {
		for _, d := range domain.Datasets {
			cfg.Datasets = append(cfg.Datasets, d.Name)
		}
	}
	return &Svc{sync: port, cfg: cfg, log: *logger.Named("syncer")}
}

// Run sweeps on a ticker until ctx is done
func (s *Svc) Run(ctx context.Context) error {
	t := time.NewTicker(s.cfg.Every)
	defer t.Stop()

	// one sweep up front so a fresh process primes the cache promptly
	s.Sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep fans out one staleness check per dataset and joins them
// each dataset fails independently; one failure never blocks the rest
func (s *Svc) Sweep(ctx context.Context) {
	var wg sync.WaitGroup
	for _, name := range s.cfg.Datasets {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			s.sweepOne(ctx, name)
		}(name)
	}
	wg.Wait()
}

func (s *Svc) sweepOne(ctx context.Context, name string) {
	stale, err := s.sync.Stale(ctx, name)
	if err != nil {
		s.log.Warn().Str("dataset", name).Err(err).Msg("staleness probe failed")
		return
	}
	if !stale {
		return
	}
	if err := s.sync.Refresh(ctx, name); err != nil {
		s.log.Warn().Str("dataset", name).Err(err).Msg("refresh failed")
		return
	}
	s.log.Info().Str("dataset", name).Msg("snapshot refreshed")
}
