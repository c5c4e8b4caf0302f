// Package module wires blog into the API using modkit
package module

import (
	"net/http"

	modkit "sitekit/internal/modkit"
	"sitekit/internal/modkit/httpkit"
	"sitekit/internal/modkit/repokit"
	"sitekit/internal/modkit/swaggerkit"
	str "sitekit/internal/platform/strings"
	bloghttp "sitekit/internal/services/blog/http"
	blogrepo "sitekit/internal/services/blog/repo"
	blogsvc "sitekit/internal/services/blog/service"
)

// Wiring is what blog needs injected from the assembler
type Wiring struct {
	DB repokit.TxRunner

	// RequireUser guards the write endpoint; nil leaves it open
	RequireUser func(http.Handler) http.Handler
}

// Module implements the blog module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws []func(http.Handler) http.Handler

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc blogsvc.Service
}

// New constructs the blog module
// expects Wiring injected via modkit.WithPorts
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("blog"), modkit.WithPrefix("/blog")}, opts...)...)

	w, ok := b.Ports.(Wiring)
	if !ok {
		panic("blog module requires Wiring with a database TxRunner")
	}

	svc := blogsvc.New(w.DB, blogrepo.NewSQLite())

	swaggerkit.Describe(
		swaggerkit.Endpoint{Method: "GET", Path: b.Prefix + "/", Tag: b.Name, Summary: "List published posts"},
		swaggerkit.Endpoint{Method: "GET", Path: b.Prefix + "/post/{id}", Tag: b.Name, Summary: "Fetch a single post"},
		swaggerkit.Endpoint{Method: "GET", Path: b.Prefix + "/search", Tag: b.Name, Summary: "Search posts"},
		swaggerkit.Endpoint{Method: "GET", Path: b.Prefix + "/category/{name}", Tag: b.Name, Summary: "Posts in a category"},
		swaggerkit.Endpoint{Method: "POST", Path: b.Prefix + "/write", Tag: b.Name, Summary: "Create a post"},
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
		bloghttp.Register(r, m.svc, w.RequireUser)
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
