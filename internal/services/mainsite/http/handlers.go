// Package http provides the informational pages for the main feature
package http

import (
	stdhttp "net/http"

	"sitekit/internal/modkit/httpkit"
)

// Deps are the handler dependencies
type Deps struct {
	SiteName string
	Theme    string
}

// Register mounts the main routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.Get(r, "/home", h.home)
	httpkit.Get(r, "/about", h.about)
}

type handlers struct{ deps Deps }

func (h *handlers) home(_ *stdhttp.Request) (any, error) {
	return map[string]any{
		"site_name": h.deps.SiteName,
		"theme":     h.deps.Theme,
		"message":   "Welcome to " + h.deps.SiteName,
	}, nil
}

func (h *handlers) about(_ *stdhttp.Request) (any, error) {
	return map[string]any{
		"site_name": h.deps.SiteName,
		"about":     h.deps.SiteName + " is built from composable feature modules",
	}, nil
}
