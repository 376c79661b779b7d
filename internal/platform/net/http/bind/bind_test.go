package bind

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "griddesk/internal/platform/errors"
)

type payload struct {
	From   string   `json:"from" validate:"omitempty,isodate"`
	To     string   `json:"to" validate:"omitempty,isodate"`
	Day    string   `json:"day" validate:"omitempty,datedigits"`
	Ranges []string `json:"ranges" validate:"omitempty,max=10"`
}

func post(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(body))
}

func TestParseJSON_OK(t *testing.T) {
	in, err := ParseJSON[payload](post(`{"from":"2025-04-01","to":"2025-04-30","day":"20250415"}`))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if in.From != "2025-04-01" || in.Day != "20250415" {
		t.Fatalf("parsed = %+v", in)
	}
}

func TestParseJSON_EmptyBody(t *testing.T) {
	if _, err := ParseJSON[payload](post("")); perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("empty POST body should be a JSON error, got %v", err)
	}

	// safe methods tolerate empty bodies
	req := httptest.NewRequest(http.MethodGet, "/x", strings.NewReader(""))
	if _, err := ParseJSON[payload](req); err != nil {
		t.Fatalf("empty GET body should pass: %v", err)
	}
}

func TestParseJSON_UnknownField(t *testing.T) {
	_, err := ParseJSON[payload](post(`{"nope":1}`))
	if perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("unknown field should be a JSON error, got %v", err)
	}
}

func TestParseJSON_ISODateValidation(t *testing.T) {
	_, err := ParseJSON[payload](post(`{"from":"01-04-2025"}`))
	if perr.CodeOf(err) != perr.ErrorCodeValidation {
		t.Fatalf("bad iso date should be a validation error, got %v", err)
	}
	e, _ := perr.As(err)
	if e.Field() != "from" {
		t.Fatalf("field = %q, want from", e.Field())
	}
}

func TestParseJSON_DateDigitsValidation(t *testing.T) {
	cases := []struct {
		day string
		ok  bool
	}{
		{"20240315", true},
		{"2024031", false},
		{"20241315", false},
		{"202403xx", false},
	}
	for _, tc := range cases {
		_, err := ParseJSON[payload](post(`{"day":"` + tc.day + `"}`))
		if tc.ok && err != nil {
			t.Fatalf("day %q should pass: %v", tc.day, err)
		}
		if !tc.ok && perr.CodeOf(err) != perr.ErrorCodeValidation {
			t.Fatalf("day %q should fail validation, got %v", tc.day, err)
		}
	}
}
