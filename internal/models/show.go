package models

import (
	"fmt"
	"strings"
	"time"
)

type Show struct {
	ID        int       `json:"id" db:"id"`
	VenueID   int       `json:"venue_id" db:"venue_id"`
	ArtistID  int       `json:"artist_id" db:"artist_id"`
	StartTime time.Time `json:"start_time" db:"start_time"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CreateShowRequest struct {
	VenueID   int    `json:"venue_id" validate:"required,gt=0"`
	ArtistID  int    `json:"artist_id" validate:"required,gt=0"`
	StartTime string `json:"start_time" validate:"required,starttime"`
}

// ToShow converts the request; StartTime must already have passed validation.
func (req *CreateShowRequest) ToShow() (*Show, error) {
	start, err := ParseStartTime(req.StartTime)
	if err != nil {
		return nil, err
	}
	return &Show{VenueID: req.VenueID, ArtistID: req.ArtistID, StartTime: start}, nil
}

// ShowForm carries the defaults for the show create form.
type ShowForm struct {
	StartTime time.Time `json:"start_time"`
}

// ShowListing is one row of the flat show listing.
type ShowListing struct {
	ID              int       `json:"id" db:"id"`
	VenueID         int       `json:"venue_id" db:"venue_id"`
	VenueName       string    `json:"venue_name" db:"venue_name"`
	ArtistID        int       `json:"artist_id" db:"artist_id"`
	ArtistName      string    `json:"artist_name" db:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link" db:"artist_image_link"`
	StartTime       time.Time `json:"start_time" db:"start_time"`
}

var startTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// ParseStartTime accepts the layouts the show form produces. Inputs without a
// zone are read as UTC.
func ParseStartTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid start_time %q", s)
}

// IsPast reports whether a show starting at start is in the past at now.
// A show starting exactly at now is upcoming.
func IsPast(start, now time.Time) bool {
	return start.Before(now)
}

// PartitionShows splits shows into past and upcoming relative to now. Every
// element lands in exactly one of the two slices, which are never nil.
func PartitionShows[T any](shows []T, startOf func(T) time.Time, now time.Time) (past, upcoming []T) {
	past, upcoming = []T{}, []T{}
	for _, s := range shows {
		if IsPast(startOf(s), now) {
			past = append(past, s)
		} else {
			upcoming = append(upcoming, s)
		}
	}
	return past, upcoming
}

// SearchMatch is the minimal projection returned by name search.
type SearchMatch struct {
	ID               int    `json:"id" db:"id"`
	Name             string `json:"name" db:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows" db:"num_upcoming_shows"`
}

type SearchResult struct {
	SearchTerm string        `json:"search_term"`
	Count      int           `json:"count"`
	Data       []SearchMatch `json:"data"`
}

// HomePage is the view-model behind GET /.
type HomePage struct {
	RecentVenues  []SearchMatch `json:"recent_venues"`
	RecentArtists []SearchMatch `json:"recent_artists"`
}
