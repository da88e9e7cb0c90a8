package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"showbook/internal/models"
)

func newShowRouter(s *memStore) *chi.Mux {
	h := NewShowHandler(&mockShowRepo{s: s})
	h.now = func() time.Time { return fixedNow }

	r := chi.NewRouter()
	r.Get("/shows", h.ListShows)
	r.Get("/shows/create", h.CreateShowForm)
	r.Post("/shows/create", h.CreateShow)
	return r
}

func TestCreateShowEndToEnd(t *testing.T) {
	s := seededStore()
	s.shows = nil
	r := newShowRouter(s)

	form := url.Values{"venue_id": {"1"}, "artist_id": {"4"}, "start_time": {"2019-05-21T21:30:00"}}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, postForm("/shows/create", form))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d (%s)", w.Code, w.Body.String())
	}
	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["message"] != "Show was successfully listed!" {
		t.Fatalf("unexpected message %v", resp["message"])
	}

	req := httptest.NewRequest(http.MethodGet, "/shows", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var shows []models.ShowListing
	if err := json.Unmarshal(w.Body.Bytes(), &shows); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(shows) != 1 {
		t.Fatalf("expected one show, got %+v", shows)
	}
	got := shows[0]
	if got.VenueName != "The Musical Hop" || got.ArtistName != "Guns N Petals" {
		t.Fatalf("unexpected joined names %+v", got)
	}
	if !got.StartTime.Equal(time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start time %v", got.StartTime)
	}
}

func TestCreateShowUnknownVenue(t *testing.T) {
	s := seededStore()
	s.shows = nil
	r := newShowRouter(s)

	form := url.Values{"venue_id": {"999"}, "artist_id": {"4"}, "start_time": {"2019-05-21T21:30:00"}}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, postForm("/shows/create", form))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d (%s)", w.Code, w.Body.String())
	}
	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["message"] != "An error occurred. Show could not be listed." {
		t.Fatalf("unexpected message %v", resp["message"])
	}
	if len(s.shows) != 0 {
		t.Fatalf("expected no show persisted, got %d", len(s.shows))
	}
}

func TestCreateShowValidation(t *testing.T) {
	cases := []url.Values{
		{"venue_id": {"1"}, "artist_id": {"4"}, "start_time": {"next tuesday"}},
		{"venue_id": {"one"}, "artist_id": {"4"}, "start_time": {"2019-05-21T21:30:00"}},
		{"venue_id": {"1"}, "start_time": {"2019-05-21T21:30:00"}},
	}
	for _, form := range cases {
		s := seededStore()
		r := newShowRouter(s)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, postForm("/shows/create", form))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%v: expected 400 got %d", form, w.Code)
		}
		if s.writes != 0 {
			t.Fatalf("%v: store touched on invalid input", form)
		}
	}
}

func TestCreateShowFormDefaultsToNow(t *testing.T) {
	r := newShowRouter(newMemStore())

	req := httptest.NewRequest(http.MethodGet, "/shows/create", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var form models.ShowForm
	if err := json.Unmarshal(w.Body.Bytes(), &form); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !form.StartTime.Equal(fixedNow) {
		t.Fatalf("expected %v got %v", fixedNow, form.StartTime)
	}
}
