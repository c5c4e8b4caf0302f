// Package http provides http transport for dashboard
package http

import (
	stdhttp "net/http"

	"sitekit/internal/modkit/httpkit"
	"sitekit/internal/services/dashboard/domain"
	svc "sitekit/internal/services/dashboard/service"
)

// Register mounts dashboard endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/", h.dashboard)
}

type handlers struct{ svc svc.Service }

// dashboard serves the configured variant unless ?type= overrides it
func (h *handlers) dashboard(r *stdhttp.Request) (any, error) {
	t := domain.Type(r.URL.Query().Get("type"))
	return h.svc.Dashboard(r.Context(), t)
}
