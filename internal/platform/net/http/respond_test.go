package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "griddesk/internal/platform/errors"
)

func exec(h http.HandlerFunc) (*httptest.ResponseRecorder, Envelope) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	h(rec, req)
	var env Envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return rec, env
}

func TestHandle_OK(t *testing.T) {
	rec, env := exec(Handle(func(*http.Request) Response {
		return OK(map[string]int{"total": 5})
	}))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if env.Status != "OK" || env.Error != "" {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestHandle_ErrorBodyDrivesStatus(t *testing.T) {
	rec, env := exec(Handle(func(*http.Request) Response {
		return Error(perr.Unauthorizedf("missing viewer role"))
	}))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
	if env.Error != "missing viewer role" || env.Code != perr.ErrorCodeUnauthorized {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestHandle_NoContent(t *testing.T) {
	rec, _ := exec(Handle(func(*http.Request) Response { return NoContent() }))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("body should be empty, got %q", rec.Body.String())
	}
}
