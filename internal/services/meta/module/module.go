// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"net/http"
	"time"

	modkit "sitekit/internal/modkit"
	"sitekit/internal/modkit/httpkit"
	"sitekit/internal/modkit/swaggerkit"
	str "sitekit/internal/platform/strings"
	metahttp "sitekit/internal/services/meta/http"
)

// Info carries the assembled site configuration for the config endpoint
type Info struct {
	SiteName      string
	Theme         string
	DashboardType string
	Features      []string
	Requested     []string
	AutoAdded     []string
	DB            any
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
// expects Info injected via modkit.WithPorts
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	info, _ := b.Ports.(Info)

	swaggerkit.Describe(
		swaggerkit.Endpoint{Method: "GET", Path: b.Prefix + "/health", Tag: b.Name, Summary: "Liveness"},
		swaggerkit.Endpoint{Method: "GET", Path: b.Prefix + "/ready", Tag: b.Name, Summary: "Readiness with dependency checks"},
		swaggerkit.Endpoint{Method: "GET", Path: b.Prefix + "/version", Tag: b.Name, Summary: "Build information"},
		swaggerkit.Endpoint{Method: "GET", Path: b.Prefix + "/service", Tag: b.Name, Summary: "Service info and uptime"},
		swaggerkit.Endpoint{Method: "GET", Path: b.Prefix + "/config", Tag: b.Name, Summary: "Assembled site configuration"},
	)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		startedAt: time.Now(),
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName:   "sitekit-server",
			StartedAt:     m.startedAt,
			DB:            info.DB,
			SiteName:      info.SiteName,
			Theme:         info.Theme,
			DashboardType: info.DashboardType,
			Features:      info.Features,
			Requested:     info.Requested,
			AutoAdded:     info.AutoAdded,
		})
		if external != nil {
			external(r)
		}
	}

	return m
}

// MountRoutes implements the modkit.Module interface
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

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.name, "meta") }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
