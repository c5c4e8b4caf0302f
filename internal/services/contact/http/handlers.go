// Package http provides the contact endpoint
package http

import (
	stdhttp "net/http"

	"sitekit/internal/modkit/httpkit"
)

// Deps are the handler dependencies
type Deps struct {
	SiteName string
	Email    string
}

// Register mounts the contact routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.Get(r, "/", h.contact)
}

type handlers struct{ deps Deps }

func (h *handlers) contact(_ *stdhttp.Request) (any, error) {
	return map[string]any{
		"site_name": h.deps.SiteName,
		"email":     h.deps.Email,
		"message":   "Get in touch with the " + h.deps.SiteName + " team",
	}, nil
}
