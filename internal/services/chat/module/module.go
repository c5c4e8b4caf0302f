// Package module wires chat into the API using modkit
package module

import (
	"net/http"

	modkit "sitekit/internal/modkit"
	"sitekit/internal/modkit/httpkit"
	"sitekit/internal/modkit/swaggerkit"
	str "sitekit/internal/platform/strings"
	chathttp "sitekit/internal/services/chat/http"
	chatsvc "sitekit/internal/services/chat/service"
)

// Module implements the chat module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws []func(http.Handler) http.Handler

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc chatsvc.Service
}

// New constructs the chat module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("chat"), modkit.WithPrefix("/chat")}, opts...)...)

	svc := chatsvc.New()

	swaggerkit.Describe(
		swaggerkit.Endpoint{Method: "GET", Path: b.Prefix + "/", Tag: b.Name, Summary: "List chat rooms"},
		swaggerkit.Endpoint{Method: "GET", Path: b.Prefix + "/room/{id}", Tag: b.Name, Summary: "Room with recent messages"},
		swaggerkit.Endpoint{Method: "GET", Path: b.Prefix + "/direct", Tag: b.Name, Summary: "Direct conversations"},
		swaggerkit.Endpoint{Method: "POST", Path: b.Prefix + "/send", Tag: b.Name, Summary: "Send a message"},
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
		chathttp.Register(r, m.svc)
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
