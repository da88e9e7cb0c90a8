package handlers

import (
	"net/http"
	"time"

	"showbook/internal/interfaces"
	"showbook/internal/logging"
	"showbook/internal/metrics"
	"showbook/internal/models"
)

const recentLimit = 10

type HomeHandler struct {
	seeder  interfaces.Seeder
	venues  interfaces.VenueRepository
	artists interfaces.ArtistRepository
	now     func() time.Time
}

func NewHomeHandler(seeder interfaces.Seeder, venues interfaces.VenueRepository, artists interfaces.ArtistRepository) *HomeHandler {
	return &HomeHandler{seeder: seeder, venues: venues, artists: artists, now: time.Now}
}

// Home loads the default rows into an empty directory, then lists the most
// recently listed venues and artists.
// @Tags Home
// @Summary Home page
// @Produce json
// @Success 200 {object} models.HomePage
// @Router / [get]
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	seeded, err := h.seeder.SeedIfEmpty(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "Directory", "An error occurred. Default data could not be loaded.")
		return
	}
	if seeded {
		metrics.RecordSeed()
		logging.FromContext(r.Context()).Info().Msg("loaded default directory rows")
	}

	now := h.now()
	venues, err := h.venues.Recent(r.Context(), recentLimit, now)
	if err != nil {
		writeStoreError(w, r, err, "Venue", "An error occurred. Venues could not be listed.")
		return
	}
	artists, err := h.artists.Recent(r.Context(), recentLimit, now)
	if err != nil {
		writeStoreError(w, r, err, "Artist", "An error occurred. Artists could not be listed.")
		return
	}

	writeJSON(w, http.StatusOK, models.HomePage{RecentVenues: venues, RecentArtists: artists})
}
