// internal/routes/routes.go
package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"showbook/internal/config"
	"showbook/internal/handlers"
	appmw "showbook/internal/middleware"
	"showbook/internal/repository"
	"showbook/internal/services"
)

// SetupRoutes wires the directory handlers onto a chi router. images may be
// nil, in which case the upload routes are not registered.
func SetupRoutes(conn *sqlx.DB, cfg *config.Config, images services.ImageStore) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RealIP)
	r.Use(appmw.RequestLogging)
	r.Use(appmw.Recovery)
	r.Use(appmw.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "not_found", "message": "Page not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"error": "method_not_allowed", "message": "Method not allowed"})
	})

	r.Get("/health", healthHandler(conn))
	r.Handle("/metrics", promhttp.Handler())
	RegisterSwaggerRoutes(r)

	venues := repository.NewVenueRepository(conn)
	artists := repository.NewArtistRepository(conn)
	shows := repository.NewShowRepository(conn)

	home := handlers.NewHomeHandler(repository.NewSeeder(conn), venues, artists)
	r.Get("/", home.Home)

	RegisterVenueRoutes(r, venues, images)
	RegisterArtistRoutes(r, artists, images)
	RegisterShowRoutes(r, shows)

	return r
}

type dbStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func healthHandler(conn *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := conn.PingContext(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{
				"status": "degraded",
				"db":     dbStatus{Status: "down", Error: "database unreachable"},
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "db": dbStatus{Status: "ok"}})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
