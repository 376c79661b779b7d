package service

import (
	"context"
	"testing"
	"time"

	"griddesk/internal/adapters/ingest/sheets"
	perr "griddesk/internal/platform/errors"
	"griddesk/internal/platform/store"
	"griddesk/internal/services/datasets/domain"
)

// fakeProvider serves canned sheets and counts calls
type fakeProvider struct {
	sheets map[string]sheets.Sheet
	err    error

	fetches int
	probes  int
}

func (f *fakeProvider) Fetch(ctx context.Context, name string) (sheets.Sheet, error) {
	f.fetches++
	if f.err != nil {
		return sheets.Sheet{}, f.err
	}
	return f.sheets[name], nil
}

func (f *fakeProvider) Probe(ctx context.Context, name string) (sheets.Sheet, error) {
	f.probes++
	if f.err != nil {
		return sheets.Sheet{}, f.err
	}
	s := f.sheets[name]
	if len(s.Rows) > 1 {
		s.Rows = s.Rows[:1]
	}
	return s, nil
}

func pendingSheet(firstDate string) sheets.Sheet {
	return sheets.Sheet{
		Headers: []string{"application_id", "applicant_name", "applied_date", "delay_days", "division_code"},
		Rows: [][]string{
			{"A-1001", "Ram Kumar", firstDate, "12", "D23"},
			{"A-1002", "Sita Devi", "2025-07-02", "oops", "D24"},
		},
	}
}

func newSvc(p *fakeProvider) *Svc {
	return New(store.NewMemKV(0), p)
}

func TestRecords_ReadThroughCachesOnce(t *testing.T) {
	t.Parallel()

	p := &fakeProvider{sheets: map[string]sheets.Sheet{domain.DatasetPending: pendingSheet("2025-07-01")}}
	s := newSvc(p)
	ctx := context.Background()

	first, err := s.Records(ctx, domain.DatasetPending)
	if err != nil {
		t.Fatalf("Records: %v", err)
	}
	second, err := s.Records(ctx, domain.DatasetPending)
	if err != nil {
		t.Fatalf("Records: %v", err)
	}
	if p.fetches != 1 {
		t.Fatalf("fetches=%d want 1, second read must come from cache", p.fetches)
	}
	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("rows=%d/%d want 2/2", len(first), len(second))
	}
}

func TestPending_DefensiveParsing(t *testing.T) {
	t.Parallel()

	p := &fakeProvider{sheets: map[string]sheets.Sheet{domain.DatasetPending: pendingSheet("2025-07-01")}}
	s := newSvc(p)

	apps, err := s.Pending(context.Background())
	if err != nil {
		t.Fatalf("Pending: %v", err)
	}
	if apps[0].DelayDays != 12 {
		t.Fatalf("delay=%d want 12", apps[0].DelayDays)
	}
	// non numeric delay parses to zero, the record is kept
	if apps[1].DelayDays != 0 || apps[1].AppNumber != "A-1002" {
		t.Fatalf("malformed record mishandled: %+v", apps[1])
	}
}

func TestRecords_FetchFailureIsUpstream(t *testing.T) {
	t.Parallel()

	p := &fakeProvider{err: perr.Upstreamf("boom")}
	s := newSvc(p)

	_, err := s.Records(context.Background(), domain.DatasetPending)
	if perr.CodeOf(err) != perr.ErrorCodeUpstream {
		t.Fatalf("code=%v want upstream", perr.CodeOf(err))
	}
}

func TestStale_ComparesFirstRowDate(t *testing.T) {
	t.Parallel()

	p := &fakeProvider{sheets: map[string]sheets.Sheet{domain.DatasetPending: pendingSheet("2025-07-01")}}
	s := newSvc(p)
	ctx := context.Background()

	// nothing cached yet: always stale
	stale, err := s.Stale(ctx, domain.DatasetPending)
	if err != nil || !stale {
		t.Fatalf("empty cache: stale=%v err=%v, want true", stale, err)
	}

	if _, err := s.Records(ctx, domain.DatasetPending); err != nil {
		t.Fatalf("prime: %v", err)
	}
	stale, err = s.Stale(ctx, domain.DatasetPending)
	if err != nil || stale {
		t.Fatalf("matching date: stale=%v err=%v, want false", stale, err)
	}

	// upstream first row moved
	p.sheets[domain.DatasetPending] = pendingSheet("2025-07-03")
	stale, err = s.Stale(ctx, domain.DatasetPending)
	if err != nil || !stale {
		t.Fatalf("changed date: stale=%v err=%v, want true", stale, err)
	}
}

func TestRefresh_OverwritesAndNotifies(t *testing.T) {
	t.Parallel()

	p := &fakeProvider{sheets: map[string]sheets.Sheet{domain.DatasetPending: pendingSheet("2025-07-01")}}
	s := newSvc(p)
	ctx := context.Background()

	if _, err := s.Records(ctx, domain.DatasetPending); err != nil {
		t.Fatalf("prime: %v", err)
	}

	events, cancel := s.Events().Subscribe()
	defer cancel()

	p.sheets[domain.DatasetPending] = pendingSheet("2025-07-03")
	if err := s.Refresh(ctx, domain.DatasetPending); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	select {
	case ev := <-events:
		if ev.Dataset != domain.DatasetPending || ev.ID == "" {
			t.Fatalf("unexpected event %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("expected an update event")
	}

	recs, err := s.Records(ctx, domain.DatasetPending)
	if err != nil {
		t.Fatalf("Records: %v", err)
	}
	if recs[0]["applied_date"] != "2025-07-03" {
		t.Fatal("refresh did not overwrite the snapshot")
	}
}

func TestHub_NonBlockingNotify(t *testing.T) {
	t.Parallel()

	h := NewHub()
	ch, cancel := h.Subscribe()
	defer cancel()

	// saturate the subscriber buffer and keep notifying; none may block
	for i := 0; i < 50; i++ {
		h.Notify(domain.UpdateEvent{ID: "x", Dataset: "pending"})
	}
	if len(ch) == 0 {
		t.Fatal("expected at least one buffered event")
	}
}

func TestAges_ReportsSnapshotTimes(t *testing.T) {
	t.Parallel()

	p := &fakeProvider{sheets: map[string]sheets.Sheet{domain.DatasetPending: pendingSheet("2025-07-01")}}
	s := newSvc(p)
	fixed := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }
	ctx := context.Background()

	if _, err := s.Records(ctx, domain.DatasetPending); err != nil {
		t.Fatalf("prime: %v", err)
	}
	ages := s.Ages(ctx)
	if got := ages[domain.DatasetPending]; !got.Equal(fixed) {
		t.Fatalf("age=%v want %v", got, fixed)
	}
}
