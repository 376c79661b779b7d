package http

import (
	"net/http/pprof"
	"strings"
)

// MountProfiler mounts net/http/pprof under prefix when enabled
func MountProfiler(r Router, prefix string, enabled bool) {
	if !enabled {
		return
	}
	p := "/" + strings.Trim(prefix, "/")
	r.Route(p+"/pprof", func(rr Router) {
		rr.Get("/", pprof.Index)
		rr.Get("/cmdline", pprof.Cmdline)
		rr.Get("/profile", pprof.Profile)
		rr.Get("/symbol", pprof.Symbol)
		rr.Get("/trace", pprof.Trace)
		rr.Handle("/goroutine", pprof.Handler("goroutine"))
		rr.Handle("/heap", pprof.Handler("heap"))
		rr.Handle("/allocs", pprof.Handler("allocs"))
		rr.Handle("/block", pprof.Handler("block"))
		rr.Handle("/mutex", pprof.Handler("mutex"))
		rr.Handle("/threadcreate", pprof.Handler("threadcreate"))
	})
}
