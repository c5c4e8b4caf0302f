// Package http provides http transport for chat
package http

import (
	stdhttp "net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"sitekit/internal/modkit/httpkit"
	perr "sitekit/internal/platform/errors"
	"sitekit/internal/services/chat/domain"
	svc "sitekit/internal/services/chat/service"
)

// Register mounts chat endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/", h.rooms)
	httpkit.Get(r, "/room/{id}", h.room)
	httpkit.Get(r, "/direct", h.direct)
	httpkit.PostJSON[domain.SendInput](r, "/send", h.send)
}

type handlers struct{ svc svc.Service }

func (h *handlers) rooms(r *stdhttp.Request) (any, error) {
	rooms, err := h.svc.Rooms(r.Context())
	if err != nil {
		return nil, err
	}
	return map[string]any{"rooms": rooms}, nil
}

func (h *handlers) room(r *stdhttp.Request) (any, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return nil, perr.InvalidArgf("room id must be an integer")
	}
	return h.svc.Room(r.Context(), id)
}

func (h *handlers) direct(r *stdhttp.Request) (any, error) {
	convs, err := h.svc.Direct(r.Context())
	if err != nil {
		return nil, err
	}
	return map[string]any{"conversations": convs}, nil
}

func (h *handlers) send(r *stdhttp.Request, in domain.SendInput) (any, error) {
	return h.svc.Send(r.Context(), in)
}
