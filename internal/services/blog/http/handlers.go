// Package http provides http transport for blog
package http

import (
	stdhttp "net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"sitekit/internal/modkit/httpkit"
	perr "sitekit/internal/platform/errors"
	"sitekit/internal/services/blog/domain"
	svc "sitekit/internal/services/blog/service"
)

// Register mounts blog endpoints on the given router
func Register(r httpkit.Router, s svc.Service, requireUser func(stdhttp.Handler) stdhttp.Handler) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/post/{id}", h.get)
	httpkit.Get(r, "/search", h.search)
	httpkit.Get(r, "/category/{name}", h.byCategory)

	// writing needs a session
	r.Group(func(gr httpkit.Router) {
		if requireUser != nil {
			gr.Use(requireUser)
		}
		httpkit.PostJSON[domain.CreatePostInput](gr, "/write", h.create)
	})
}

type handlers struct{ svc svc.Service }

func (h *handlers) list(r *stdhttp.Request) (any, error) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	return h.svc.List(r.Context(), limit, offset)
}

func (h *handlers) get(r *stdhttp.Request) (any, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return nil, perr.InvalidArgf("post id must be an integer")
	}
	return h.svc.Get(r.Context(), id)
}

func (h *handlers) search(r *stdhttp.Request) (any, error) {
	q := r.URL.Query().Get("q")
	if q == "" {
		return []domain.Post{}, nil
	}
	posts, err := h.svc.Search(r.Context(), q)
	if err != nil {
		return nil, err
	}
	return map[string]any{"query": q, "posts": posts}, nil
}

func (h *handlers) byCategory(r *stdhttp.Request) (any, error) {
	name := chi.URLParam(r, "name")
	posts, err := h.svc.ByCategory(r.Context(), name)
	if err != nil {
		return nil, err
	}
	return map[string]any{"category": name, "posts": posts}, nil
}

func (h *handlers) create(r *stdhttp.Request, in domain.CreatePostInput) (any, error) {
	post, err := h.svc.Create(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(post), nil
}
