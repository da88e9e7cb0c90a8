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

type ArtistHandler struct {
	repo      interfaces.ArtistRepository
	images    services.ImageStore
	validator *validator.Validate
	now       func() time.Time
}

func NewArtistHandler(repo interfaces.ArtistRepository, images services.ImageStore) *ArtistHandler {
	return &ArtistHandler{
		repo:      repo,
		images:    images,
		validator: newValidator(),
		now:       time.Now,
	}
}

// ListArtists
// @Tags Artists
// @Summary List artists
// @Produce json
// @Success 200 {array} models.ArtistSummary
// @Router /artists [get]
func (h *ArtistHandler) ListArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := h.repo.List(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "Artist", "An error occurred. Artists could not be listed.")
		return
	}
	writeJSON(w, http.StatusOK, artists)
}

// @Tags Artists
// @Summary Search artists by name
// @Accept x-www-form-urlencoded
// @Produce json
// @Param search_term formData string false "Case-insensitive name fragment"
// @Success 200 {object} models.SearchResult
// @Router /artists/search [post]
func (h *ArtistHandler) SearchArtists(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Failed to parse form")
		return
	}
	term := r.PostForm.Get("search_term")

	result, err := h.repo.SearchByName(r.Context(), term, h.now())
	if err != nil {
		writeStoreError(w, r, err, "Artist", "An error occurred. Search failed.")
		return
	}
	result.SearchTerm = term
	writeJSON(w, http.StatusOK, result)
}

// @Tags Artists
// @Summary Artist detail with past and upcoming shows
// @Produce json
// @Param artistID path int true "Artist ID"
// @Success 200 {object} models.ArtistDetail
// @Failure 404 {object} map[string]interface{}
// @Router /artists/{artistID} [get]
func (h *ArtistHandler) ShowArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "artistID", "Artist")
	if !ok {
		return
	}
	now := h.now()

	artist, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err, "Artist", "An error occurred. Artist could not be loaded.")
		return
	}
	past, upcoming, err := h.repo.ListShows(r.Context(), id, now)
	if err != nil {
		writeStoreError(w, r, err, "Artist", "An error occurred. Artist could not be loaded.")
		return
	}

	artist.PastShowsCount = len(past)
	artist.UpcomingShowsCount = len(upcoming)
	writeJSON(w, http.StatusOK, models.ArtistDetail{
		Artist:             artist,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	})
}

func (h *ArtistHandler) CreateArtistForm(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.NewFormOptions())
}

// @Tags Artists
// @Summary Create an artist
// @Accept x-www-form-urlencoded
// @Produce json
// @Param name formData string true "Name"
// @Param city formData string true "City"
// @Param state formData string true "State code"
// @Param genres formData []string true "Genres" collectionFormat(multi)
// @Param seeking_venue formData string false "y when looking for venues"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /artists/create [post]
func (h *ArtistHandler) CreateArtist(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Failed to parse form")
		return
	}

	req := models.CreateArtistRequest{
		Name:               formValue(r, "name"),
		City:               formValue(r, "city"),
		State:              formValue(r, "state"),
		Phone:              formValue(r, "phone"),
		Website:            formValue(r, "website"),
		FacebookLink:       formValue(r, "facebook_link"),
		ImageLink:          formValue(r, "image_link"),
		Genres:             formList(r, "genres"),
		SeekingVenue:       formCheckbox(r, "seeking_venue"),
		SeekingDescription: formValue(r, "seeking_description"),
	}
	if err := validate(h.validator, req); err != nil {
		writeValidationError(w, err)
		return
	}

	artist := req.ToArtist()
	err := h.repo.Create(r.Context(), artist)
	metrics.RecordWrite("artist", "create", err)
	if err != nil {
		writeStoreError(w, r, err, "Artist", "An error occurred. Artist "+req.Name+" could not be listed.")
		return
	}

	writeOutcome(w, http.StatusCreated, "Artist "+artist.Name+" was successfully listed!", artist.ID)
}

func (h *ArtistHandler) EditArtistForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "artistID", "Artist")
	if !ok {
		return
	}

	artist, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err, "Artist", "An error occurred. Artist could not be loaded.")
		return
	}
	writeJSON(w, http.StatusOK, models.ArtistEditForm{FormOptions: models.NewFormOptions(), Artist: artist})
}

// @Tags Artists
// @Summary Update an artist
// @Accept x-www-form-urlencoded
// @Produce json
// @Param artistID path int true "Artist ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /artists/{artistID}/edit [post]
func (h *ArtistHandler) EditArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "artistID", "Artist")
	if !ok {
		return
	}
	if err := parseForm(r); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Failed to parse form")
		return
	}

	req := models.UpdateArtistRequest{
		Name:               formOptional(r, "name"),
		City:               formOptional(r, "city"),
		State:              formOptional(r, "state"),
		Phone:              formOptional(r, "phone"),
		Website:            formOptional(r, "website"),
		FacebookLink:       formOptional(r, "facebook_link"),
		ImageLink:          formOptional(r, "image_link"),
		Genres:             formOptionalList(r, "genres"),
		SeekingVenue:       formOptionalCheckbox(r, "seeking_venue"),
		SeekingDescription: formOptional(r, "seeking_description"),
	}
	if err := validate(h.validator, req); err != nil {
		writeValidationError(w, err)
		return
	}

	label := "Artist"
	if req.Name != nil {
		label += " " + *req.Name
	}
	h.update(w, r, id, &req, label)
}

// @Tags Artists
// @Summary Upload an artist image
// @Accept multipart/form-data
// @Produce json
// @Param artistID path int true "Artist ID"
// @Param image formData file true "Image, at most 10 MB"
// @Success 200 {object} map[string]interface{}
// @Router /artists/{artistID}/image [post]
func (h *ArtistHandler) UploadArtistImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "artistID", "Artist")
	if !ok {
		return
	}
	if h.images == nil {
		writeJSONErrorResponse(w, http.StatusNotImplemented, "uploads_disabled", "Image uploads are not configured")
		return
	}
	if _, err := h.repo.GetByID(r.Context(), id); err != nil {
		writeStoreError(w, r, err, "Artist", "An error occurred. Artist could not be loaded.")
		return
	}

	link, ok := receiveImage(w, r, h.images, "artists")
	if !ok {
		return
	}
	h.update(w, r, id, &models.UpdateArtistRequest{ImageLink: &link}, "Artist")
}

func (h *ArtistHandler) update(w http.ResponseWriter, r *http.Request, id int, req *models.UpdateArtistRequest, label string) {
	err := h.repo.Update(r.Context(), id, req)
	metrics.RecordWrite("artist", "update", err)
	if err != nil {
		writeStoreError(w, r, err, "Artist", "An error occurred. "+label+" could not be updated.")
		return
	}

	artist, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err, "Artist", "An error occurred. "+label+" could not be updated.")
		return
	}
	writeOutcome(w, http.StatusOK, "Artist "+artist.Name+" was successfully updated!", artist.ID)
}
