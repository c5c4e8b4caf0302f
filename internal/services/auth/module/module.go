// Package module wires auth into the API using modkit
package module

import (
	"net/http"

	modkit "sitekit/internal/modkit"
	"sitekit/internal/modkit/httpkit"
	"sitekit/internal/modkit/swaggerkit"
	str "sitekit/internal/platform/strings"
	authhttp "sitekit/internal/services/auth/http"
	authsvc "sitekit/internal/services/auth/service"
	dbdomain "sitekit/internal/services/database/domain"
)

// StorePorts is what auth needs from the database module
type StorePorts struct {
	Users    dbdomain.UserStorePort
	Sessions dbdomain.SessionStorePort
}

// Module implements the auth module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws []func(http.Handler) http.Handler

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc authsvc.Service
}

// New constructs the auth module
// expects StorePorts injected via modkit.WithPorts
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("auth"), modkit.WithPrefix("/auth")}, opts...)...)

	stores, ok := b.Ports.(StorePorts)
	if !ok {
		panic("auth module requires database StorePorts")
	}

	ttl := int64(deps.Cfg.Prefix("AUTH_").MayInt("SESSION_TTL_SECONDS", 7*24*3600))
	svc := authsvc.New(stores.Users, stores.Sessions, ttl)

	swaggerkit.Describe(
		swaggerkit.Endpoint{Method: "POST", Path: b.Prefix + "/register", Tag: b.Name, Summary: "Register an account"},
		swaggerkit.Endpoint{Method: "POST", Path: b.Prefix + "/login", Tag: b.Name, Summary: "Log in and start a session"},
		swaggerkit.Endpoint{Method: "POST", Path: b.Prefix + "/logout", Tag: b.Name, Summary: "End the current session"},
		swaggerkit.Endpoint{Method: "GET", Path: b.Prefix + "/me", Tag: b.Name, Summary: "Current account or guest"},
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
		authhttp.Register(r, m.svc)
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

// Service exposes the auth service for assembler level wiring
// the session middleware and sweeper are built from it
func (m *Module) Service() authsvc.Service { return m.svc }
