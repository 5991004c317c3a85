// Package module wires the querylog service
package module

import (
	"tripparse/internal/modkit"
	"tripparse/internal/modkit/httpkit"
	str "tripparse/internal/platform/strings"
	"tripparse/internal/services/querylog/domain"
	qhttp "tripparse/internal/services/querylog/http"
	"tripparse/internal/services/querylog/service"
)

// Ports exposed by the querylog module
type Ports struct {
	Recorder domain.RecorderPort
	History  domain.HistoryPort
}

// Module implements modkit.Module. The API composes its Recorder port
// into nlpsearch; the module's own routes only read the log back
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	ports  Ports

	register func(httpkit.Router)
}

// New constructs the querylog module. Without a PG runner the recorder
// degrades to a no-op and the recent listing stays empty
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("querylog"),
		modkit.WithPrefix("/querylog"),
	}, opts...)...)

	rec := service.NewRecorder(deps.PG)

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		ports: Ports{
			Recorder: rec,
			History:  rec,
		},
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		qhttp.Register(r, m.ports.History)
		if external != nil {
			external(r)
		}
	}
	return m
}

// Name implements modkit.Module
func (m *Module) Name() string { return str.MustString(m.name, "querylog") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		if m.register != nil {
			m.register(rr)
		}
	})
}
