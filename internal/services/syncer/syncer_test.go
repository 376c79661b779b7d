package syncer

import (
	"context"
	"sync"
	"testing"
	"time"

	perr "griddesk/internal/platform/errors"
)

// fakeSync records calls and scripts per dataset outcomes
type fakeSync struct {
	mu        sync.Mutex
	stale     map[string]bool
	staleErr  map[string]error
	refreshed []string
}

func (f *fakeSync) Stale(ctx context.Context, name string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.staleErr[name]; err != nil {
		return false, err
	}
	return f.stale[name], nil
}

func (f *fakeSync) Refresh(ctx context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refreshed = append(f.refreshed, name)
	return nil
}

func TestSweep_RefreshesOnlyStaleDatasets(t *testing.T) {
	t.Parallel()

	f := &fakeSync{stale: map[string]bool{"pending": true, "dockets": false}}
	s := New(f, Config{Datasets: []string{"pending", "dockets"}})

	s.Sweep(context.Background())

	if len(f.refreshed) != 1 || f.refreshed[0] != "pending" {
		t.Fatalf("refreshed=%v want [pending]", f.refreshed)
	}
}

func TestSweep_FailuresAreIndependent(t *testing.T) {
	t.Parallel()

	f := &fakeSync{
		stale:    map[string]bool{"collections": true},
		staleErr: map[string]error{"pending": perr.Upstreamf("probe down")},
	}
	s := New(f, Config{Datasets: []string{"pending", "collections"}})

	s.Sweep(context.Background())

	// the failing probe must not stop the healthy dataset's refresh
	if len(f.refreshed) != 1 || f.refreshed[0] != "collections" {
		t.Fatalf("refreshed=%v want [collections]", f.refreshed)
	}
}

func TestNew_DefaultsCoverEveryDataset(t *testing.T) {
	t.Parallel()

	s := New(&fakeSync{}, Config{})
	if len(s.cfg.Datasets) == 0 {
		t.Fatal("expected the default sweep to cover the known datasets")
	}
	if s.cfg.Every <= 0 {
		t.Fatal("expected a default interval")
	}
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	f := &fakeSync{}
	s := New(f, Config{Every: 10 * time.Millisecond, Datasets: []string{"pending"}})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Fatalf("err=%v want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not stop on cancel")
	}
}
