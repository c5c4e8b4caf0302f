// Package module wires the main informational pages using a tiny module
package module

import (
	"net/http"

	modkit "sitekit/internal/modkit"
	"sitekit/internal/modkit/httpkit"
	"sitekit/internal/modkit/swaggerkit"
	str "sitekit/internal/platform/strings"
	mainhttp "sitekit/internal/services/mainsite/http"
)

// Module implements the main feature
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws []func(http.Handler) http.Handler

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)
}

// New constructs the main module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("main"), modkit.WithPrefix("/main")}, opts...)...)

	swaggerkit.Describe(
		swaggerkit.Endpoint{Method: "GET", Path: b.Prefix + "/home", Tag: b.Name, Summary: "Site home"},
		swaggerkit.Endpoint{Method: "GET", Path: b.Prefix + "/about", Tag: b.Name, Summary: "About the site"},
	)

	site := deps.Cfg.Prefix("SITE_")
	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		mainhttp.Register(r, mainhttp.Deps{
			SiteName: site.MayString("NAME", "Unnamed Project"),
			Theme:    site.MayString("THEME", "light-professional"),
		})
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
func (m *Module) Ports() any { return nil }
