package main

import (
	"context"
	"flag"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"griddesk/internal/platform/config"
	"griddesk/internal/platform/logger"
	"griddesk/internal/platform/store"

	"griddesk/internal/adapters/ingest/sheets"
	dssvc "griddesk/internal/services/datasets/service"
	"griddesk/internal/services/syncer"
)

func main() {
	root := config.New()
	sheetsCfg := root.Prefix("SERVICE_SHEETS_")
	cacheCfg := root.Prefix("SERVICE_CACHE_")
	syncCfg := root.Prefix("SYNC_")

	l := logger.Get()

	st, err := store.Open(context.Background(), store.Config{
		Path:     cacheCfg.MayString("PATH", ""),
		MaxBytes: int64(cacheCfg.MayInt("MAX_BYTES", 0)),
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// Flags
	var (
		fOnce     = flag.Bool("once", false, "run a single sweep and exit")
		fEvery    = flag.Duration("every", syncCfg.MayDuration("EVERY", 5*time.Minute), "sweep interval")
		fDatasets = flag.String("datasets", syncCfg.MayString("DATASETS", ""), "comma separated dataset subset (empty = all)")
	)
	flag.Parse()

	provider := sheets.NewClient(sheets.Options{
		BaseURL: sheetsCfg.MustString("BASE_URL"),
		Timeout: sheetsCfg.MayDuration("TIMEOUT", 15*time.Second),
	})
	datasets := dssvc.New(st.KV, provider)

	var subset []string
	if s := strings.TrimSpace(*fDatasets); s != "" {
		for _, name := range strings.Split(s, ",") {
			if name = strings.TrimSpace(name); name != "" {
				subset = append(subset, name)
			}
		}
	}

	worker := syncer.New(datasets, syncer.Config{Every: *fEvery, Datasets: subset})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *fOnce {
		worker.Sweep(ctx)
		return
	}
	if err := worker.Run(ctx); err != nil && ctx.Err() == nil {
		l.Panic().Err(err).Msg("sync worker stopped")
	}
}
