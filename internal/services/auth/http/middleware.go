package http

import (
	stdhttp "net/http"
	"strconv"

	pnet "sitekit/internal/platform/net"
	svc "sitekit/internal/services/auth/service"
)

// CurrentUser resolves the session cookie and annotates the request context
// with the user id. Requests without a valid session pass through untouched,
// handlers that care fall back to the Guest identity
func CurrentUser(s svc.Service) func(stdhttp.Handler) stdhttp.Handler {
	return func(next stdhttp.Handler) stdhttp.Handler {
		return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
			if token := tokenFrom(r); token != "" {
				if acct, err := s.UserFromToken(r.Context(), token); err == nil {
					ctx := pnet.WithUser(r.Context(), strconv.FormatInt(acct.ID, 10))
					r = r.WithContext(ctx)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireUser rejects requests that carry no resolved user id
func RequireUser() func(stdhttp.Handler) stdhttp.Handler {
	return func(next stdhttp.Handler) stdhttp.Handler {
		return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
			if pnet.UserID(r.Context()) == "" {
				stdhttp.Error(w, `{"status_code":401,"status":"Unauthorized"}`, stdhttp.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
