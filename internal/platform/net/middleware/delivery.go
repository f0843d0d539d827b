package middleware

import (
	"net/http"

	pnet "modhook/internal/platform/net"
)

// Headers GitHub sets on every webhook delivery
const (
	HeaderEvent    = "X-GitHub-Event"
	HeaderDelivery = "X-GitHub-Delivery"
)

// Delivery puts the GitHub delivery id and event kind on the request context,
// where the request logger picks them up
func Delivery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := pnet.WithDelivery(r.Context(), r.Header.Get(HeaderDelivery), r.Header.Get(HeaderEvent))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
