package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"showbook/internal/metrics"
)

// Metrics records request duration and count per chi route pattern.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := wrap(w)

		next.ServeHTTP(sw, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		metrics.ObserveRequest(r.Method, route, sw.status, time.Since(start))
	})
}
