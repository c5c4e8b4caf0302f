// Package module wires dashboard into the API using modkit
package module

import (
	"net/http"

	modkit "sitekit/internal/modkit"
	"sitekit/internal/modkit/httpkit"
	"sitekit/internal/modkit/swaggerkit"
	str "sitekit/internal/platform/strings"
	dashdomain "sitekit/internal/services/dashboard/domain"
	dashhttp "sitekit/internal/services/dashboard/http"
	dashsvc "sitekit/internal/services/dashboard/service"
)

// Module implements the dashboard module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws []func(http.Handler) http.Handler

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc dashsvc.Service
}

// New constructs the dashboard module
// the default variant comes from SITE_DASHBOARD_TYPE unless overridden via ports
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("dashboard"),
		modkit.WithPrefix("/dashboard"),
	}, opts...)...)

	dtype, _ := b.Ports.(dashdomain.Type)
	if dtype == "" {
		dtype = dashdomain.Type(deps.Cfg.Prefix("SITE_").MayString("DASHBOARD_TYPE", string(dashdomain.TypeDefault)))
	}

	svc := dashsvc.New(dtype)

	swaggerkit.Describe(
		swaggerkit.Endpoint{Method: "GET", Path: b.Prefix + "/", Tag: b.Name, Summary: "Dashboard stats and activity"},
	)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		dashhttp.Register(r, m.svc)
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
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Ports returns the module ports
func (m *Module) Ports() any { return m.svc }
