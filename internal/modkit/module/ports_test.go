package module

import (
	"testing"

	phttp "griddesk/internal/platform/net/http"
)

type pinger interface{ Ping() string }

type pingPort struct{}

func (pingPort) Ping() string { return "pong" }

type fakeModule struct {
	name  string
	ports any
}

func (m fakeModule) MountRoutes(phttp.Router) {}
func (m fakeModule) Ports() any               { return m.ports }
func (m fakeModule) Name() string             { return m.name }

func TestPortsOf_DirectImplement(t *testing.T) {
	t.Parallel()

	m := fakeModule{name: "x", ports: pingPort{}}
	got, ok := PortsOf[pinger](m)
	if !ok {
		t.Fatal("expected ok")
	}
	if got.Ping() != "pong" {
		t.Fatalf("unexpected ping result %q", got.Ping())
	}
}

func TestPortsOf_StructFieldImplement(t *testing.T) {
	t.Parallel()

	bundle := struct {
		Ports pingPort
		Other int
	}{Ports: pingPort{}}

	m := fakeModule{name: "x", ports: bundle}
	if _, ok := PortsOf[pinger](m); !ok {
		t.Fatal("expected ok for exported struct field")
	}
}

func TestPortsOf_NilAndMissing(t *testing.T) {
	t.Parallel()

	if _, ok := PortsOf[pinger](fakeModule{name: "x"}); ok {
		t.Fatal("expected ok=false for nil ports")
	}
	if _, ok := PortsOf[pinger](fakeModule{name: "x", ports: 42}); ok {
		t.Fatal("expected ok=false when nothing implements T")
	}
}

func TestMustPortsOf_PanicsWhenMissing(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustPortsOf[pinger](fakeModule{name: "x"})
}
