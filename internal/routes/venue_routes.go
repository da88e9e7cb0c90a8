package routes

import (
	"github.com/go-chi/chi/v5"
	"showbook/internal/handlers"
	"showbook/internal/interfaces"
	"showbook/internal/services"
)

func RegisterVenueRoutes(r chi.Router, repo interfaces.VenueRepository, images services.ImageStore) {
	handler := handlers.NewVenueHandler(repo, images)

	r.Route("/venues", func(r chi.Router) {
		r.Get("/", handler.ListVenues)
		r.Post("/search", handler.SearchVenues)
		r.Get("/create", handler.CreateVenueForm)
		r.Post("/create", handler.CreateVenue)
		r.Get("/{venueID}", handler.ShowVenue)
		r.Delete("/{venueID}", handler.DeleteVenue)
		r.Get("/{venueID}/edit", handler.EditVenueForm)
		r.Post("/{venueID}/edit", handler.EditVenue)
		if images != nil {
			r.Post("/{venueID}/image", handler.UploadVenueImage)
		}
	})
}
