package handlers

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"showbook/internal/interfaces"
	"showbook/internal/metrics"
	"showbook/internal/models"
	"showbook/internal/services"
)

type VenueHandler struct {
	repo      interfaces.VenueRepository
	images    services.ImageStore
	validator *validator.Validate
	now       func() time.Time
}

// NewVenueHandler builds the venue handler. images may be nil when uploads
// are disabled.
func NewVenueHandler(repo interfaces.VenueRepository, images services.ImageStore) *VenueHandler {
	return &VenueHandler{
		repo:      repo,
		images:    images,
		validator: newValidator(),
		now:       time.Now,
	}
}

// ListVenues groups every venue under its (city, state) location.
// @Tags Venues
// @Summary List venues grouped by location
// @Produce json
// @Success 200 {array} models.VenueArea
// @Failure 500 {object} map[string]interface{}
// @Router /venues [get]
func (h *VenueHandler) ListVenues(w http.ResponseWriter, r *http.Request) {
	now := h.now()

	locations, err := h.repo.ListDistinctCityState(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "Venue", "An error occurred. Venues could not be listed.")
		return
	}

	areas := make([]models.VenueArea, 0, len(locations))
	for _, loc := range locations {
		venues, err := h.repo.FindByCityState(r.Context(), loc.City, loc.State, now)
		if err != nil {
			writeStoreError(w, r, err, "Venue", "An error occurred. Venues could not be listed.")
			return
		}
		area := models.VenueArea{City: loc.City, State: loc.State, Venues: make([]models.VenueSummary, 0, len(venues))}
		for _, v := range venues {
			area.Venues = append(area.Venues, models.VenueSummary{
				ID:               v.ID,
				Name:             v.Name,
				NumUpcomingShows: v.NumUpcomingShows,
			})
		}
		areas = append(areas, area)
	}

	writeJSON(w, http.StatusOK, areas)
}

// SearchVenues
// @Tags Venues
// @Summary Search venues by name
// @Accept x-www-form-urlencoded
// @Produce json
// @Param search_term formData string false "Case-insensitive name fragment"
// @Success 200 {object} models.SearchResult
// @Router /venues/search [post]
func (h *VenueHandler) SearchVenues(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Failed to parse form")
		return
	}
	term := r.PostForm.Get("search_term")

	result, err := h.repo.SearchByName(r.Context(), term, h.now())
	if err != nil {
		writeStoreError(w, r, err, "Venue", "An error occurred. Search failed.")
		return
	}
	result.SearchTerm = term
	writeJSON(w, http.StatusOK, result)
}

// ShowVenue
// @Tags Venues
// @Summary Venue detail with past and upcoming shows
// @Produce json
// @Param venueID path int true "Venue ID"
// @Success 200 {object} models.VenueDetail
// @Failure 404 {object} map[string]interface{}
// @Router /venues/{venueID} [get]
func (h *VenueHandler) ShowVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "venueID", "Venue")
	if !ok {
		return
	}
	now := h.now()

	venue, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err, "Venue", "An error occurred. Venue could not be loaded.")
		return
	}
	past, upcoming, err := h.repo.ListShows(r.Context(), id, now)
	if err != nil {
		writeStoreError(w, r, err, "Venue", "An error occurred. Venue could not be loaded.")
		return
	}

	venue.NumPastShows = len(past)
	venue.NumUpcomingShows = len(upcoming)
	writeJSON(w, http.StatusOK, models.VenueDetail{
		Venue:              venue,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	})
}

func (h *VenueHandler) CreateVenueForm(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.NewFormOptions())
}

// CreateVenue
// @Tags Venues
// @Summary Create a venue
// @Accept x-www-form-urlencoded
// @Produce json
// @Param name formData string true "Name"
// @Param city formData string true "City"
// @Param state formData string true "State code"
// @Param address formData string true "Address"
// @Param genres formData []string true "Genres" collectionFormat(multi)
// @Param seeking_talent formData string false "y when looking for talent"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /venues/create [post]
func (h *VenueHandler) CreateVenue(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Failed to parse form")
		return
	}

	req := models.CreateVenueRequest{
		Name:               formValue(r, "name"),
		Address:            formValue(r, "address"),
		City:               formValue(r, "city"),
		State:              formValue(r, "state"),
		Phone:              formValue(r, "phone"),
		Website:            formValue(r, "website"),
		FacebookLink:       formValue(r, "facebook_link"),
		ImageLink:          formValue(r, "image_link"),
		Genres:             formList(r, "genres"),
		SeekingTalent:      formCheckbox(r, "seeking_talent"),
		SeekingDescription: formValue(r, "seeking_description"),
	}
	if err := validate(h.validator, req); err != nil {
		writeValidationError(w, err)
		return
	}

	venue := req.ToVenue()
	err := h.repo.Create(r.Context(), venue)
	metrics.RecordWrite("venue", "create", err)
	if err != nil {
		writeStoreError(w, r, err, "Venue", "An error occurred. Venue "+req.Name+" could not be listed.")
		return
	}

	writeOutcome(w, http.StatusCreated, "Venue "+venue.Name+" was successfully listed!", venue.ID)
}

func (h *VenueHandler) EditVenueForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "venueID", "Venue")
	if !ok {
		return
	}

	venue, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err, "Venue", "An error occurred. Venue could not be loaded.")
		return
	}
	writeJSON(w, http.StatusOK, models.VenueEditForm{FormOptions: models.NewFormOptions(), Venue: venue})
}

// EditVenue applies the submitted fields; fields left out of the form keep
// their stored values.
// @Tags Venues
// @Summary Update a venue
// @Accept x-www-form-urlencoded
// @Produce json
// @Param venueID path int true "Venue ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /venues/{venueID}/edit [post]
func (h *VenueHandler) EditVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "venueID", "Venue")
	if !ok {
		return
	}
	if err := parseForm(r); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Failed to parse form")
		return
	}

	req := models.UpdateVenueRequest{
		Name:               formOptional(r, "name"),
		Address:            formOptional(r, "address"),
		City:               formOptional(r, "city"),
		State:              formOptional(r, "state"),
		Phone:              formOptional(r, "phone"),
		Website:            formOptional(r, "website"),
		FacebookLink:       formOptional(r, "facebook_link"),
		ImageLink:          formOptional(r, "image_link"),
		Genres:             formOptionalList(r, "genres"),
		SeekingTalent:      formOptionalCheckbox(r, "seeking_talent"),
		SeekingDescription: formOptional(r, "seeking_description"),
	}
	if err := validate(h.validator, req); err != nil {
		writeValidationError(w, err)
		return
	}

	label := "Venue"
	if req.Name != nil {
		label += " " + *req.Name
	}
	h.update(w, r, id, &req, label)
}

// UploadVenueImage stores an image and points the venue's image_link at it.
// @Tags Venues
// @Summary Upload a venue image
// @Accept multipart/form-data
// @Produce json
// @Param venueID path int true "Venue ID"
// @Param image formData file true "Image, at most 10 MB"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /venues/{venueID}/image [post]
func (h *VenueHandler) UploadVenueImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "venueID", "Venue")
	if !ok {
		return
	}
	if h.images == nil {
		writeJSONErrorResponse(w, http.StatusNotImplemented, "uploads_disabled", "Image uploads are not configured")
		return
	}
	if _, err := h.repo.GetByID(r.Context(), id); err != nil {
		writeStoreError(w, r, err, "Venue", "An error occurred. Venue could not be loaded.")
		return
	}

	link, ok := receiveImage(w, r, h.images, "venues")
	if !ok {
		return
	}
	h.update(w, r, id, &models.UpdateVenueRequest{ImageLink: &link}, "Venue")
}

func (h *VenueHandler) update(w http.ResponseWriter, r *http.Request, id int, req *models.UpdateVenueRequest, label string) {
	err := h.repo.Update(r.Context(), id, req)
	metrics.RecordWrite("venue", "update", err)
	if err != nil {
		writeStoreError(w, r, err, "Venue", "An error occurred. "+label+" could not be updated.")
		return
	}

	venue, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err, "Venue", "An error occurred. "+label+" could not be updated.")
		return
	}
	writeOutcome(w, http.StatusOK, "Venue "+venue.Name+" was successfully updated!", venue.ID)
}

// DeleteVenue removes a venue that no show references.
// @Tags Venues
// @Summary Delete a venue
// @Produce json
// @Param venueID path int true "Venue ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /venues/{venueID} [delete]
func (h *VenueHandler) DeleteVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "venueID", "Venue")
	if !ok {
		return
	}

	err := h.repo.Delete(r.Context(), id)
	metrics.RecordWrite("venue", "delete", err)
	if err != nil {
		writeStoreError(w, r, err, "Venue", "An error occurred. Venue could not be deleted.")
		return
	}
	writeOutcome(w, http.StatusOK, "Venue was successfully deleted!", id)
}
