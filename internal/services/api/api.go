// Package api provides the HTTP API for the application
package api

import (
	"time"

	"griddesk/internal/platform/config"
	"griddesk/internal/platform/logger"
	phttp "griddesk/internal/platform/net/http"
	"griddesk/internal/platform/store"

	"griddesk/internal/modkit"
	"griddesk/internal/modkit/httpkit"
	"griddesk/internal/modkit/module"

	"griddesk/internal/adapters/ingest/sheets"
	dirmod "griddesk/internal/services/api/directory/module"
	metamod "griddesk/internal/services/api/meta/module"
	reportsmod "griddesk/internal/services/api/reports/module"
	dssvc "griddesk/internal/services/datasets/service"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	SheetsConfig   config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Log: *opt.Logger,
		Cfg: opt.Config,
		KV:  opt.Store.KV,
	}

	// one dataset service shared by every read module
	provider := sheets.NewClient(sheets.Options{
		BaseURL: opt.SheetsConfig.MustString("BASE_URL"),
		Timeout: opt.SheetsConfig.MayDuration("TIMEOUT", 15*time.Second),
	})
	datasets := dssvc.New(deps.KV, provider)

	// report and directory routes require a viewer descriptor
	viewer := modkit.WithMiddlewares(httpkit.Viewer())

	mods := []module.Module{
		metamod.New(deps, metamod.Options{
			Cache:     opt.Store,
			Snapshots: datasets,
		}),
		reportsmod.New(deps, datasets, viewer),
		dirmod.New(deps, datasets, viewer),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		phttp.MountSwagger(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
