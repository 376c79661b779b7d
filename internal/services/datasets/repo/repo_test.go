package repo

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"griddesk/internal/platform/store"
	"griddesk/internal/services/datasets/domain"
)

func newRepo(t *testing.T) (Repo, *store.MemKV) {
	t.Helper()
	kv := store.NewMemKV(0)
	return KV().Bind(kv), kv
}

func someRecords(n int) []domain.Record {
	recs := make([]domain.Record, n)
	for i := range recs {
		recs[i] = domain.Record{
			"application_id": fmt.Sprintf("A-%04d", i),
			"delay_days":     "12",
			"division_code":  "D23",
		}
	}
	return recs
}

func TestRepo_RoundTrip(t *testing.T) {
	t.Parallel()

	r, _ := newRepo(t)
	ctx := context.Background()
	snap := Snapshot{Records: someRecords(3), FetchedAt: time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)}

	r.Set(ctx, domain.DatasetPending, snap)
	got, ok := r.Get(ctx, domain.DatasetPending)
	if !ok {
		t.Fatal("expected hit")
	}
	if !got.FetchedAt.Equal(snap.FetchedAt) {
		t.Fatalf("fetched_at=%v want %v", got.FetchedAt, snap.FetchedAt)
	}
	if len(got.Records) != 3 || got.Records[0]["application_id"] != "A-0000" {
		t.Fatalf("unexpected records %v", got.Records)
	}
}

func TestRepo_CompactFormRoundTrips(t *testing.T) {
	t.Parallel()

	r, kv := newRepo(t)
	ctx := context.Background()
	recs := someRecords(compactThreshold + 1)

	r.Set(ctx, domain.DatasetPending, Snapshot{Records: recs, FetchedAt: time.Now()})

	// the stored form must actually be compact
	raw, ok, err := kv.Get(ctx, domain.DatasetPending)
	if err != nil || !ok {
		t.Fatalf("kv read: ok=%v err=%v", ok, err)
	}
	if !contains(raw, `"compact"`) || contains(raw, `"records"`) {
		t.Fatal("expected compact serialized form above the threshold")
	}

	got, ok := r.Get(ctx, domain.DatasetPending)
	if !ok {
		t.Fatal("expected hit")
	}
	if len(got.Records) != len(recs) {
		t.Fatalf("rows=%d want %d", len(got.Records), len(recs))
	}
	// reconstruction must be lossless
	if got.Records[42]["application_id"] != "A-0042" || got.Records[42]["division_code"] != "D23" {
		t.Fatalf("reconstructed record differs: %v", got.Records[42])
	}
}

func TestRepo_GetMissOnGarbage(t *testing.T) {
	t.Parallel()

	r, kv := newRepo(t)
	ctx := context.Background()

	if err := kv.Set(ctx, domain.DatasetPending, []byte("{not json")); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, ok := r.Get(ctx, domain.DatasetPending); ok {
		t.Fatal("expected miss on decode failure")
	}
}

// fullKV fails the first n writes, then delegates to a MemKV
type fullKV struct {
	*store.MemKV
	failures int
	deletes  []string
}

func (f *fullKV) Set(ctx context.Context, key string, val []byte) error {
	if f.failures > 0 {
		f.failures--
		return store.ErrFull
	}
	return f.MemKV.Set(ctx, key, val)
}

func (f *fullKV) Delete(ctx context.Context, key string) error {
	f.deletes = append(f.deletes, key)
	return f.MemKV.Delete(ctx, key)
}

func TestRepo_QuotaClearsOthersAndRetriesOnce(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := &fullKV{MemKV: store.NewMemKV(0), failures: 1}
	if err := kv.MemKV.Set(ctx, "dockets", []byte("{}")); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := kv.MemKV.Set(ctx, "offices", []byte("{}")); err != nil {
		t.Fatalf("seed: %v", err)
	}
	r := KV().Bind(kv)

	r.Set(ctx, "pending", Snapshot{Records: someRecords(1), FetchedAt: time.Now()})

	// every other key deleted, never the one being written
	if len(kv.deletes) != 2 {
		t.Fatalf("deletes=%v want dockets and offices", kv.deletes)
	}
	for _, d := range kv.deletes {
		if d == "pending" {
			t.Fatal("must never evict the key being written")
		}
	}
	// the retried write landed
	if _, ok := r.Get(ctx, "pending"); !ok {
		t.Fatal("expected retried write to land")
	}
}

// brokenKV fails every write with a non-quota error
type brokenKV struct {
	*store.MemKV
	sets    int
	deletes []string
}

func (b *brokenKV) Set(context.Context, string, []byte) error {
	b.sets++
	return context.DeadlineExceeded
}

func (b *brokenKV) Delete(ctx context.Context, key string) error {
	b.deletes = append(b.deletes, key)
	return b.MemKV.Delete(ctx, key)
}

func TestRepo_TransientWriteErrorDoesNotEvict(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := &brokenKV{MemKV: store.NewMemKV(0)}
	if err := kv.MemKV.Set(ctx, "dockets", []byte("{}")); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := kv.MemKV.Set(ctx, "offices", []byte("{}")); err != nil {
		t.Fatalf("seed: %v", err)
	}
	r := KV().Bind(kv)

	r.Set(ctx, "pending", Snapshot{Records: someRecords(1), FetchedAt: time.Now()})

	// only quota pressure may trigger eviction; a transient backend error
	// must leave every other snapshot alone and not retry
	if len(kv.deletes) != 0 {
		t.Fatalf("deletes=%v want none", kv.deletes)
	}
	if kv.sets != 1 {
		t.Fatalf("sets=%d want 1", kv.sets)
	}
}

func TestRepo_EvictionFreesRoomForRetry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := store.NewMemKV(700)
	filler := make([]byte, 300)
	if err := kv.Set(ctx, "dockets", filler); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := kv.Set(ctx, "offices", filler); err != nil {
		t.Fatalf("seed: %v", err)
	}
	r := KV().Bind(kv)

	r.Set(ctx, "pending", Snapshot{Records: someRecords(1), FetchedAt: time.Now()})

	// the budget could not hold all three, so the others were evicted and
	// the retried write actually landed in the freed room
	if _, ok := r.Get(ctx, "pending"); !ok {
		t.Fatal("expected retried write to land after eviction")
	}
	for _, k := range []string{"dockets", "offices"} {
		if _, ok, _ := kv.Get(ctx, k); ok {
			t.Fatalf("expected %s to be evicted", k)
		}
	}
}

func TestRepo_SecondFailureIsSwallowed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := &fullKV{MemKV: store.NewMemKV(0), failures: 2}
	r := KV().Bind(kv)

	// must not panic or error, the write is best-effort
	r.Set(ctx, "pending", Snapshot{Records: someRecords(1), FetchedAt: time.Now()})

	if _, ok := r.Get(ctx, "pending"); ok {
		t.Fatal("write should not have landed")
	}
}

func contains(b []byte, sub string) bool {
	return strings.Contains(string(b), sub)
}
