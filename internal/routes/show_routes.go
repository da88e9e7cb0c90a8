package routes

import (
	"github.com/go-chi/chi/v5"
	"showbook/internal/handlers"
	"showbook/internal/interfaces"
)

func RegisterShowRoutes(r chi.Router, repo interfaces.ShowRepository) {
	handler := handlers.NewShowHandler(repo)

	r.Route("/shows", func(r chi.Router) {
		r.Get("/", handler.ListShows)
		r.Get("/create", handler.CreateShowForm)
		r.Post("/create", handler.CreateShow)
	})
}
