package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"modhook/internal/platform/net/middleware"
)

// CommonStack is the read API stack, applied at the root router
func CommonStack() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.RequestID,
		middleware.RealIP,

		// panic barrier sits inside the request id so the JSON 500 carries it
		middleware.RecoverJSON,

		middleware.NoCache,
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: time.Second}),

		middleware.CORS(middleware.CORSOptions{}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.Timeout(30 * time.Second),
	}
}

// APIStack is mounted under /api and trims trailing slashes.
// The webhook routes stay outside of it because /webhook/gh/ must not redirect
func APIStack() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.StripSlashes,
	}
}
