package middleware

import (
	"net/http"
	"time"

	"modhook/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// AccessLogOptions tunes AccessLogZerolog
type AccessLogOptions struct {
	// Slow logs requests at least this long at warn; zero never does
	Slow time.Duration
}

// AccessLogZerolog writes one line per request through the request logger.
// Webhook deliveries also carry their GitHub event kind
func AccessLogZerolog(opt AccessLogOptions) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			began := time.Now()
			next.ServeHTTP(ww, r)
			took := time.Since(began)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			lvl := zerolog.InfoLevel
			if opt.Slow > 0 && took >= opt.Slow {
				lvl = zerolog.WarnLevel
			}
			e := logger.C(r.Context()).WithLevel(lvl).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", status).
				Int("bytes", ww.BytesWritten()).
				Dur("elapsed", took)
			if ev := r.Header.Get(HeaderEvent); ev != "" {
				e = e.Str("event", ev)
			}
			e.Msg("request done")
		})
	}
}
