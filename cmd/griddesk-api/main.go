// @title         Griddesk API
// @version       0.1.0
// @description   Role scoped reporting endpoints over cached sheet datasets

package main

import (
	"context"

	"griddesk/internal/platform/config"
	"griddesk/internal/platform/logger"
	phttp "griddesk/internal/platform/net/http"
	"griddesk/internal/platform/store"

	"griddesk/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	sheetsCfg := root.Prefix("SERVICE_SHEETS_") // upstream sheet publisher
	cacheCfg := root.Prefix("SERVICE_CACHE_")   // local snapshot store

	// bring up logging early
	l := logger.Get()

	// open the snapshot cache (sqlite file, or in-memory when no path set)
	st, err := store.Open(
		context.Background(),
		store.Config{
			Path:     cacheCfg.MayString("PATH", ""),
			MaxBytes: int64(cacheCfg.MayInt("MAX_BYTES", 0)),
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			SheetsConfig:   sheetsCfg,
			Store:          st,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
