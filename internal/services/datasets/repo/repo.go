// Package repo persists dataset snapshots in the local cache store
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"griddesk/internal/modkit/repokit"
	"griddesk/internal/platform/logger"
	"griddesk/internal/platform/store"
	"griddesk/internal/services/datasets/domain"
)

// compactThreshold is the row count above which a snapshot is stored in
// the compact headers plus row-arrays form instead of keyed records
const compactThreshold = 500

// Snapshot is a cached copy of one dataset
type Snapshot struct {
	Records   []domain.Record
	FetchedAt time.Time
}

// Repo is the snapshot cache contract
// Get reports a miss on absent keys AND on any decode failure; it never
// surfaces an error to the caller. Set is best-effort: a full store
// triggers the clear-others-and-retry-once policy and a second failure
// is logged and swallowed.
type Repo interface {
	Get(ctx context.Context, name string) (Snapshot, bool)
	Set(ctx context.Context, name string, snap Snapshot)
	Keys(ctx context.Context) []string
}

// KV builds the cache repo binder over the snapshot store
func KV() repokit.Binder[Repo] {
	return repokit.BindFunc[Repo](func(kv repokit.KV) Repo {
		return &cacheRepo{kv: kv, log: *logger.Named("datasets.repo")}
	})
}

type cacheRepo struct {
	kv  repokit.KV
	log logger.Logger
}

// envelope is the serialized snapshot
// exactly one of Records or Compact is set
type envelope struct {
	FetchedAt time.Time       `json:"fetched_at"`
	Records   []domain.Record `json:"records,omitempty"`
	Compact   *compactForm    `json:"compact,omitempty"`
}

type compactForm struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

func (r *cacheRepo) Get(ctx context.Context, name string) (Snapshot, bool) {
	raw, ok, err := r.kv.Get(ctx, name)
	if err != nil {
		r.log.Warn().Str("dataset", name).Err(err).Msg("cache read failed, treating as miss")
		return Snapshot{}, false
	}
	if !ok {
		return Snapshot{}, false
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		r.log.Warn().Str("dataset", name).Err(err).Msg("cache decode failed, treating as miss")
		return Snapshot{}, false
	}
	snap := Snapshot{FetchedAt: env.FetchedAt, Records: env.Records}
	if env.Compact != nil {
		snap.Records = env.Compact.expand()
	}
	return snap, true
}

func (r *cacheRepo) Set(ctx context.Context, name string, snap Snapshot) {
	env := envelope{FetchedAt: snap.FetchedAt}
	if len(snap.Records) > compactThreshold {
		env.Compact = compact(snap.Records)
	} else {
		env.Records = snap.Records
	}
	raw, err := json.Marshal(env)
	if err != nil {
		r.log.Error().Str("dataset", name).Err(err).Msg("cache encode failed")
		return
	}

	if err := r.kv.Set(ctx, name, raw); err != nil {
		// eviction only helps under quota pressure; any other backend
		// error just loses this write
		if !errors.Is(err, store.ErrFull) {
			r.log.Warn().Str("dataset", name).Err(err).Msg("cache write failed")
			return
		}
		// clear every OTHER key, never the one being written, then retry
		// exactly once
		r.evictOthers(ctx, name)
		if err2 := r.kv.Set(ctx, name, raw); err2 != nil {
			r.log.Warn().Str("dataset", name).Err(err2).Msg("cache write failed after eviction, giving up")
		}
	}
}

func (r *cacheRepo) Keys(ctx context.Context) []string {
	keys, err := r.kv.Keys(ctx)
	if err != nil {
		r.log.Warn().Err(err).Msg("cache keys failed")
		return nil
	}
	return keys
}

func (r *cacheRepo) evictOthers(ctx context.Context, keep string) {
	keys, err := r.kv.Keys(ctx)
	if err != nil {
		r.log.Warn().Err(err).Msg("cache keys failed during eviction")
		return
	}
	for _, k := range keys {
		if k == keep {
			continue
		}
		if err := r.kv.Delete(ctx, k); err != nil {
			r.log.Warn().Str("key", k).Err(err).Msg("cache evict failed")
		}
	}
}

// compact flattens records onto the union of their field names
func compact(recs []domain.Record) *compactForm {
	seen := map[string]bool{}
	var headers []string
	for _, rec := range recs {
		for k := range rec {
			if !seen[k] {
				seen[k] = true
				headers = append(headers, k)
			}
		}
	}
	sort.Strings(headers)

	rows := make([][]string, len(recs))
	for i, rec := range recs {
		row := make([]string, len(headers))
		for j, h := range headers {
			row[j] = rec[h]
		}
		rows[i] = row
	}
	return &compactForm{Headers: headers, Rows: rows}
}

// expand reconstructs keyed records from the compact form
func (c *compactForm) expand() []domain.Record {
	recs := make([]domain.Record, len(c.Rows))
	for i, row := range c.Rows {
		rec := make(domain.Record, len(c.Headers))
		for j, h := range c.Headers {
			if j < len(row) {
				rec[h] = row[j]
			} else {
				rec[h] = ""
			}
		}
		recs[i] = rec
	}
	return recs
}
