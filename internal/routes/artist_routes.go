package routes

import (
	"github.com/go-chi/chi/v5"
	"showbook/internal/handlers"
	"showbook/internal/interfaces"
	"showbook/internal/services"
)

func RegisterArtistRoutes(r chi.Router, repo interfaces.ArtistRepository, images services.ImageStore) {
	handler := handlers.NewArtistHandler(repo, images)

	r.Route("/artists", func(r chi.Router) {
		r.Get("/", handler.ListArtists)
		r.Post("/search", handler.SearchArtists)
		r.Get("/create", handler.CreateArtistForm)
		r.Post("/create", handler.CreateArtist)
		r.Get("/{artistID}", handler.ShowArtist)
		r.Get("/{artistID}/edit", handler.EditArtistForm)
		r.Post("/{artistID}/edit", handler.EditArtist)
		if images != nil {
			r.Post("/{artistID}/image", handler.UploadArtistImage)
		}
	})
}
