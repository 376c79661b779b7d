package sheets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	perr "griddesk/internal/platform/errors"
)

const pendingCSV = "application_id,applicant_name,delay_days,division_code\n" +
	"A-1001,Ram Kumar,12,D23\n" +
	"A-1002,Sita Devi,45,D23\n"

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c := NewClient(Options{BaseURL: srv.URL, RetryBase: time.Millisecond})
	c.sleep = func(time.Duration) {}
	return c, srv
}

func TestFetch_DecodesHeaderAndRows(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pending.csv" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(pendingCSV))
	})

	sheet, err := c.Fetch(context.Background(), "pending")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(sheet.Headers) != 4 || sheet.Headers[0] != "application_id" {
		t.Fatalf("unexpected headers %v", sheet.Headers)
	}
	if len(sheet.Rows) != 2 {
		t.Fatalf("rows=%d want 2", len(sheet.Rows))
	}
	if got := sheet.Field(sheet.Rows[1], "applicant_name"); got != "Sita Devi" {
		t.Fatalf("Field=%q want Sita Devi", got)
	}
}

func TestProbe_StopsAfterFirstRow(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(pendingCSV))
	})

	sheet, err := c.Probe(context.Background(), "pending")
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if len(sheet.Rows) != 1 {
		t.Fatalf("probe rows=%d want 1", len(sheet.Rows))
	}
	if got := sheet.Field(sheet.Rows[0], "application_id"); got != "A-1001" {
		t.Fatalf("first row id=%q want A-1001", got)
	}
}

func TestFetch_SkipsMalformedRows(t *testing.T) {
	// a bare quote fails the csv parser for that row only; the rest of
	// the sheet must still come through
	const crooked = "application_id,applicant_name,delay_days,division_code\n" +
		"A-1001,Ram Kumar,12,D23\n" +
		"A-1002,Si\"ta Devi,45,D23\n" +
		"A-1003,Mohan Singh,7,D23\n"
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(crooked))
	})

	sheet, err := c.Fetch(context.Background(), "pending")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(sheet.Rows) != 2 {
		t.Fatalf("rows=%d want 2 good rows", len(sheet.Rows))
	}
	if got := sheet.Field(sheet.Rows[1], "application_id"); got != "A-1003" {
		t.Fatalf("row after the bad one = %q want A-1003", got)
	}
}

func TestFetch_RetriesTransientThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(pendingCSV))
	})

	if _, err := c.Fetch(context.Background(), "pending"); err != nil {
		t.Fatalf("expected retry to recover, got %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("calls=%d want 2", calls.Load())
	}
}

func TestFetch_ExhaustedRetriesSurfaceUpstream(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.Fetch(context.Background(), "pending")
	if err == nil {
		t.Fatal("expected error")
	}
	if perr.CodeOf(err) != perr.ErrorCodeUpstream {
		t.Fatalf("code=%v want upstream", perr.CodeOf(err))
	}
}

func TestFetch_NotFoundDoesNotRetry(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.NotFound(w, r)
	})

	if _, err := c.Fetch(context.Background(), "nope"); err == nil {
		t.Fatal("expected error")
	}
	if calls.Load() != 1 {
		t.Fatalf("calls=%d want 1", calls.Load())
	}
}

func TestFetch_EmptyBodyIsUpstreamError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := c.Fetch(context.Background(), "pending")
	if perr.CodeOf(err) != perr.ErrorCodeUpstream {
		t.Fatalf("code=%v want upstream", perr.CodeOf(err))
	}
}
