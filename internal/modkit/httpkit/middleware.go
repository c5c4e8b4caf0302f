package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"sitekit/internal/platform/net/middleware"
)

// CommonStack returns a baseline per app middleware slice
// compose with session or feature middleware as needed in the assembler
func CommonStack(corsOrigins ...string) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),

		// observability
		middleware.AccessLog,

		// cross-origin
		middleware.CORS(middleware.CORSOptions{
			AllowedOrigins:   corsOrigins,
			AllowCredentials: true,
		}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.RedirectSlashes(),
		middleware.StripSlashes(),
		middleware.Timeout(30 * time.Second),
	}
}
