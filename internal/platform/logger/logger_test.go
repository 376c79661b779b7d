package logger

import (
	"bytes"
	"context"
	"os"
	"testing"

	"griddesk/internal/platform/testkit"
)

// Init is once-only for the process, so the whole package shares one sink
var sink bytes.Buffer

func TestMain(m *testing.M) {
	Init(Options{Level: "debug", Format: "json", Writer: &sink, Service: "griddesk-test"})
	os.Exit(m.Run())
}

func TestGet_WritesJSON(t *testing.T) {
	sink.Reset()
	Get().Info().Str("k", "v").Msg("hello from test")

	out := sink.String()
	testkit.MustContain(t, out, `"hello from test"`)
	testkit.MustContain(t, out, `"service":"griddesk-test"`)
}

func TestC_EnrichesFromContext(t *testing.T) {
	sink.Reset()
	ctx := WithRequest(context.Background(), "req-123", "6613001")
	C(ctx).Info().Msg("scoped line")

	out := sink.String()
	testkit.MustContain(t, out, `"request_id":"req-123"`)
	testkit.MustContain(t, out, `"office_code":"6613001"`)
}

func TestNamed_TagsComponent(t *testing.T) {
	sink.Reset()
	Named("syncer").Info().Msg("component line")
	testkit.MustContain(t, sink.String(), `"component":"syncer"`)
}

func TestParseLevel_Fallback(t *testing.T) {
	if parseLevel("warning").String() != "warn" {
		t.Fatal("warning should parse as warn")
	}
	if parseLevel("bogus").String() != "debug" {
		t.Fatal("unknown level should fall back to debug")
	}
}
