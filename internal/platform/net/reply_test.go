package net

import (
	"net/http"
	"testing"

	perr "griddesk/internal/platform/errors"
)

func TestOKEnvelope(t *testing.T) {
	status, w := OK(map[string]int{"total": 3}, "req-1")
	if status != http.StatusOK || w.StatusCode != http.StatusOK {
		t.Fatalf("OK status = %d/%d", status, w.StatusCode)
	}
	if w.RequestID != "req-1" || w.Error != "" {
		t.Fatalf("OK envelope = %+v", w)
	}
}

func TestErrorEnvelope(t *testing.T) {
	status, w := Error(perr.Upstreamf("sheet fetch failed"), "req-2")
	if status != http.StatusServiceUnavailable {
		t.Fatalf("Error status = %d", status)
	}
	if w.Code != perr.ErrorCodeUpstream || w.Error != "sheet fetch failed" {
		t.Fatalf("Error envelope = %+v", w)
	}
}

func TestErrorNilIsOK(t *testing.T) {
	status, w := Error(nil, "")
	if status != http.StatusOK || w.Error != "" {
		t.Fatalf("Error(nil) = %d %+v", status, w)
	}
}
