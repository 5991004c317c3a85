// @title         Tripparse API
// @version       0.1.0
// @description   Deterministic travel-query parsing endpoints

package main

import (
	"context"

	"tripparse/internal/platform/config"
	"tripparse/internal/platform/logger"
	phttp "tripparse/internal/platform/net/http"
	"tripparse/internal/platform/store"

	"tripparse/internal/core/rulepack"
	"tripparse/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	pgCfg := root.Prefix("SERVICE_PGSQL_") // pgCfg lives under SERVICE_PGSQL_*

	// bring up logging early
	l := logger.Get()

	// fail fast on a broken embedded rulepack
	pack, err := rulepack.Load()
	if err != nil {
		l.Panic().Err(err).Msg("rulepack.Load failed")
	}

	// the query log is optional; without a DBURL the API runs store-less
	var st *store.Store
	if dburl := pgCfg.MayString("DBURL", ""); dburl != "" {
		st, err = store.Open(
			context.Background(),
			store.Config{
				AppName: "tripparse",
				PG: store.PGConfig{
					Enabled:     true,
					URL:         dburl,
					MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
					SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
					LogSQL:      pgCfg.MayBool("LOG_SQL", true),
				},
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
	} else {
		l.Info().Msg("no SERVICE_PGSQL_DBURL set, query log disabled")
	}

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Store:          st,
			Logger:         l,
			RulesVersion:   pack.Version,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
