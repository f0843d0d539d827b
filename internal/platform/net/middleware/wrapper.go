// Package middleware holds the HTTP middlewares: chi's stock ones behind
// plain net/http types, plus the request logging, panic and delivery ones
package middleware

import (
	"net/http"
	"time"

	pstrings "modhook/internal/platform/strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// Middleware wraps a handler
type Middleware = func(http.Handler) http.Handler

// chi stock middlewares. RequestID reuses an incoming X-Request-ID or mints
// one; RealIP trusts X-Forwarded-For and X-Real-IP
var (
	RequestID    Middleware = chimw.RequestID
	RealIP       Middleware = chimw.RealIP
	NoCache      Middleware = chimw.NoCache
	StripSlashes Middleware = chimw.StripSlashes
)

// Timeout cancels the request context after d
func Timeout(d time.Duration) Middleware { return chimw.Timeout(d) }

// Heartbeat answers GET path with 200 before routing
func Heartbeat(path string) Middleware { return chimw.Heartbeat(path) }

// Compress gzips or deflates compressible responses at level
func Compress(level int) Middleware { return chimw.NewCompressor(level).Handler }

// CORSOptions are the go-chi/cors settings the read API exposes. Empty
// lists take read only defaults
type CORSOptions struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	MaxAge         int
}

func CORS(o CORSOptions) Middleware {
	return chicors.Handler(chicors.Options{
		AllowedOrigins: pstrings.IfEmpty(o.AllowedOrigins, []string{"*"}),
		AllowedMethods: pstrings.IfEmpty(o.AllowedMethods, []string{http.MethodGet, http.MethodHead, http.MethodOptions}),
		AllowedHeaders: pstrings.IfEmpty(o.AllowedHeaders, []string{"Accept", "Content-Type", "X-Request-ID"}),
		MaxAge:         o.MaxAge,
	})
}
