// Package api provides the HTTP API for the application
package api

import (
	"tripparse/internal/platform/config"
	"tripparse/internal/platform/logger"
	phttp "tripparse/internal/platform/net/http"
	"tripparse/internal/platform/store"

	"tripparse/internal/modkit"
	"tripparse/internal/modkit/httpkit"
	"tripparse/internal/modkit/module"
	"tripparse/internal/modkit/swaggerkit"

	"tripparse/internal/adapters/geocode"
	metamod "tripparse/internal/services/api/meta/module"
	nlpmod "tripparse/internal/services/api/nlpsearch/module"
	querylogmod "tripparse/internal/services/querylog/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	RulesVersion   int
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
	}
	if opt.Store != nil {
		deps.PG = opt.Store.PG
	}

	// Construct the querylog module first and extract its Recorder port
	querylog := querylogmod.New(deps)
	rec := module.MustPortsOf[querylogmod.Ports](querylog).Recorder

	// Optional external geocoder, off unless a base URL is configured
	var geo geocode.Resolver
	if base := opt.Config.MayString("GEOCODE_URL", ""); base != "" {
		geo = geocode.NewClient(geocode.Options{BaseURL: base})
	}

	nlp := nlpmod.New(
		deps,
		modkit.WithPorts(nlpmod.Ports{
			Recorder: rec,
			Geocoder: geo,
		}),
	)

	mods := []module.Module{
		metamod.New(deps, metamod.Options{RulesVersion: opt.RulesVersion}),
		querylog,
		nlp,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its prefix
			m.MountRoutes(api)
		}
	})
}
