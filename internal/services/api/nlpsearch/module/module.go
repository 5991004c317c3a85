// Package module wires nlp-search into the API using modkit
package module

import (
	"net/http"

	modkit "tripparse/internal/modkit"
	"tripparse/internal/modkit/httpkit"
	str "tripparse/internal/platform/strings"

	"tripparse/internal/adapters/geocode"
	"tripparse/internal/core/parser"
	"tripparse/internal/core/rulepack"
	nlphttp "tripparse/internal/services/api/nlpsearch/http"
	nlpsvc "tripparse/internal/services/api/nlpsearch/service"
	qdomain "tripparse/internal/services/querylog/domain"
)

// Ports the nlp-search module depends on, injected via modkit.WithPorts
type Ports struct {
	Recorder qdomain.RecorderPort
	Geocoder geocode.Resolver
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc nlpsvc.Service
}

// New constructs the nlp-search module. The recorder and geocoder ports
// are optional; without them the service just parses
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("nlpsearch"),
		modkit.WithPrefix("/nlp-search"),
	}, opts...)...)

	var ports Ports
	if b.Ports != nil {
		p, ok := b.Ports.(Ports)
		if !ok {
			panic("nlpsearch module: expected WithPorts(nlpsearch/module.Ports)")
		}
		ports = p
	}

	pack, err := rulepack.Load()
	if err != nil {
		panic(err)
	}

	var svcOpts []nlpsvc.Option
	if ports.Recorder != nil {
		svcOpts = append(svcOpts, nlpsvc.WithRecorder(ports.Recorder))
	}
	if ports.Geocoder != nil {
		svcOpts = append(svcOpts, nlpsvc.WithGeocoder(ports.Geocoder))
	}
	svc := nlpsvc.New(parser.New(pack), svcOpts...)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		nlphttp.Register(r, m.svc)
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

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "nlpsearch") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports exposes the service for cross-module callers
func (m *Module) Ports() any { return m.svc }
