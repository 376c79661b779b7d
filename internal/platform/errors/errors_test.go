package errors

import (
	stderrs "errors"
	"net/http"
	"testing"
)

func TestWrapAndUnwrap(t *testing.T) {
	cause := stderrs.New("socket closed")
	err := Wrap(cause, ErrorCodeUpstream, "fetch pending dataset")

	if got := err.Error(); got != "fetch pending dataset: socket closed" {
		t.Fatalf("Error() = %q", got)
	}
	if Root(err) != cause {
		t.Fatal("Root should return the deepest cause")
	}
	if !stderrs.Is(err, cause) {
		t.Fatal("errors.Is should see the wrapped cause")
	}
}

func TestCodeOfAndHTTPStatus(t *testing.T) {
	cases := []struct {
		err    error
		code   ErrorCode
		status int
	}{
		{Upstreamf("sheet gone"), ErrorCodeUpstream, http.StatusServiceUnavailable},
		{Cachef("disk full"), ErrorCodeCache, http.StatusInternalServerError},
		{Unauthorizedf("no viewer role"), ErrorCodeUnauthorized, http.StatusUnauthorized},
		{NotFoundf("dataset %q", "dockets"), ErrorCodeNotFound, http.StatusNotFound},
		{InvalidArgf("bad range"), ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{stderrs.New("plain"), ErrorCodeUnknown, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := CodeOf(tc.err); got != tc.code {
			t.Fatalf("CodeOf(%v) = %d, want %d", tc.err, got, tc.code)
		}
		if got := HTTPStatus(tc.err); got != tc.status {
			t.Fatalf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.status)
		}
	}
}

func TestWireFrom(t *testing.T) {
	w := WireFrom(WithField(InvalidArgf("must be a list"), "delay_ranges"))
	if w.Code != ErrorCodeInvalidArgument || w.Field != "delay_ranges" {
		t.Fatalf("WireFrom = %+v", w)
	}
	if w := WireFrom(nil); w.Code != ErrorCodeUnknown || w.Message != "" {
		t.Fatalf("WireFrom(nil) = %+v, want zero value", w)
	}
}

func TestWithOpCopyOnWrite(t *testing.T) {
	base := Upstreamf("probe failed")
	tagged := WithOp(base, "datasets.Stale")

	e1, _ := As(base)
	e2, _ := As(tagged)
	if e1.Op() != "" {
		t.Fatal("original must not be mutated")
	}
	if e2.Op() != "datasets.Stale" {
		t.Fatalf("Op = %q", e2.Op())
	}
}

func TestRetryable(t *testing.T) {
	if !Retryable(Upstreamf("flaky sheet")) {
		t.Fatal("upstream errors are retryable")
	}
	if !Retryable(Unavailablef("warming up")) {
		t.Fatal("unavailable errors are retryable")
	}
	if Retryable(Cachef("corrupt row")) {
		t.Fatal("cache errors are not retryable")
	}
	if Retryable(nil) {
		t.Fatal("nil is not retryable")
	}
}
