// Package module wires the office directory into the API using modkit
package module

import (
	"net/http"

	modkit "griddesk/internal/modkit"
	"griddesk/internal/modkit/httpkit"
	str "griddesk/internal/platform/strings"
	dirhttp "griddesk/internal/services/api/directory/http"
	dirsvc "griddesk/internal/services/api/directory/service"
	ds "griddesk/internal/services/datasets/domain"
)

// Module implements the directory module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc dirsvc.Service
}

// New constructs the directory module over the dataset reader port
func New(deps modkit.Deps, reader ds.ReaderPort, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("directory"), modkit.WithPrefix("/directory")}, opts...)...)

	svc := dirsvc.New(reader)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = svc

	external := b.Register
	m.register = func(r httpkit.Router) {
		dirhttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }
