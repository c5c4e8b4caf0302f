// Package http provides http transport for auth
package http

import (
	stdhttp "net/http"
	"time"

	"sitekit/internal/modkit/httpkit"
	"sitekit/internal/services/auth/domain"
	svc "sitekit/internal/services/auth/service"
)

// SessionCookie is the cookie carrying the session token
const SessionCookie = "sitekit_session"

// Register mounts auth endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.RegisterInput](r, "/register", h.register)
	httpkit.PostJSON[domain.LoginInput](r, "/login", h.login)
	httpkit.Post(r, "/logout", h.logout)
	httpkit.Get(r, "/me", h.me)
}

type handlers struct{ svc svc.Service }

func (h *handlers) register(r *stdhttp.Request, in domain.RegisterInput) (any, error) {
	acct, err := h.svc.Register(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(acct), nil
}

func (h *handlers) login(r *stdhttp.Request, in domain.LoginInput) (any, error) {
	acct, token, err := h.svc.Login(r.Context(), in)
	if err != nil {
		return nil, err
	}
	resp := httpkit.OK(acct)
	resp.Cookies = append(resp.Cookies, sessionCookie(token, 7*24*time.Hour))
	return resp, nil
}

func (h *handlers) logout(r *stdhttp.Request) (any, error) {
	if err := h.svc.Logout(r.Context(), tokenFrom(r)); err != nil {
		return nil, err
	}
	resp := httpkit.OK(map[string]string{"message": "logged out"})
	resp.Cookies = append(resp.Cookies, sessionCookie("", -time.Hour))
	return resp, nil
}

// me returns the session account or the Guest fallback, never an error
func (h *handlers) me(r *stdhttp.Request) (any, error) {
	acct, err := h.svc.UserFromToken(r.Context(), tokenFrom(r))
	if err != nil {
		return domain.CurrentUser{Account: domain.Guest}, nil
	}
	return domain.CurrentUser{Account: acct, SignedIn: true}, nil
}

func tokenFrom(r *stdhttp.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil {
		return c.Value
	}
	// bearer style fallback for non browser clients
	const prefix = "Bearer "
	if ah := r.Header.Get("Authorization"); len(ah) > len(prefix) && ah[:len(prefix)] == prefix {
		return ah[len(prefix):]
	}
	return ""
}

func sessionCookie(token string, ttl time.Duration) *stdhttp.Cookie {
	c := &stdhttp.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: stdhttp.SameSiteLaxMode,
	}
	if ttl < 0 {
		c.MaxAge = -1
	} else {
		c.Expires = time.Now().Add(ttl)
		c.MaxAge = int(ttl / time.Second)
	}
	return c
}
