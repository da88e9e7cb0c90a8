package handlers

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"showbook/internal/interfaces"
	"showbook/internal/metrics"
	"showbook/internal/models"
)

type ShowHandler struct {
	repo      interfaces.ShowRepository
	validator *validator.Validate
	now       func() time.Time
}

func NewShowHandler(repo interfaces.ShowRepository) *ShowHandler {
	return &ShowHandler{
		repo:      repo,
		validator: newValidator(),
		now:       time.Now,
	}
}

// ListShows
// @Tags Shows
// @Summary List every show with its venue and artist
// @Produce json
// @Success 200 {array} models.ShowListing
// @Router /shows [get]
func (h *ShowHandler) ListShows(w http.ResponseWriter, r *http.Request) {
	shows, err := h.repo.ListWithParents(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "Show", "An error occurred. Shows could not be listed.")
		return
	}
	writeJSON(w, http.StatusOK, shows)
}

func (h *ShowHandler) CreateShowForm(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.ShowForm{StartTime: h.now().UTC().Truncate(time.Second)})
}

// CreateShow books an artist at a venue. Unknown venue or artist ids are
// reported as a failed listing.
// @Tags Shows
// @Summary Create a show
// @Accept x-www-form-urlencoded
// @Produce json
// @Param venue_id formData int true "Venue ID"
// @Param artist_id formData int true "Artist ID"
// @Param start_time formData string true "Start time, e.g. 2019-05-21T21:30:00"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /shows/create [post]
func (h *ShowHandler) CreateShow(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Failed to parse form")
		return
	}

	req := models.CreateShowRequest{
		VenueID:   formInt(r, "venue_id"),
		ArtistID:  formInt(r, "artist_id"),
		StartTime: formValue(r, "start_time"),
	}
	if err := validate(h.validator, req); err != nil {
		writeValidationError(w, err)
		return
	}

	show, err := req.ToShow()
	if err != nil {
		writeValidationError(w, &interfaces.ValidationError{Fields: map[string]string{"start_time": "is invalid"}})
		return
	}

	err = h.repo.Create(r.Context(), show)
	metrics.RecordWrite("show", "create", err)
	if err != nil {
		writeStoreError(w, r, err, "Show", "An error occurred. Show could not be listed.")
		return
	}

	writeOutcome(w, http.StatusCreated, "Show was successfully listed!", show.ID)
}
