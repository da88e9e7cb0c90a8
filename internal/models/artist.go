package models

import (
	"time"

	"github.com/lib/pq"
)

type Artist struct {
	ID                 int            `json:"id" db:"id"`
	Name               string         `json:"name" db:"name"`
	City               string         `json:"city" db:"city"`
	State              string         `json:"state" db:"state"`
	Phone              string         `json:"phone" db:"phone"`
	Website            string         `json:"website" db:"website"`
	FacebookLink       string         `json:"facebook_link" db:"facebook_link"`
	ImageLink          string         `json:"image_link" db:"image_link"`
	Genres             pq.StringArray `json:"genres" db:"genres"`
	SeekingVenue       bool           `json:"seeking_venue" db:"seeking_venue"`
	SeekingDescription string         `json:"seeking_description" db:"seeking_description"`
	// Derived from shows at query time, never stored.
	UpcomingShowsCount int       `json:"upcoming_shows_count" db:"upcoming_shows_count"`
	PastShowsCount     int       `json:"past_shows_count" db:"past_shows_count"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

type CreateArtistRequest struct {
	Name               string   `json:"name" validate:"required,max=255"`
	City               string   `json:"city" validate:"required,max=120"`
	State              string   `json:"state" validate:"required,usstate"`
	Phone              string   `json:"phone" validate:"omitempty,max=120"`
	Website            string   `json:"website" validate:"omitempty,url,max=500"`
	FacebookLink       string   `json:"facebook_link" validate:"omitempty,url,max=120"`
	ImageLink          string   `json:"image_link" validate:"omitempty,url,max=500"`
	Genres             []string `json:"genres" validate:"required,min=1,dive,genre"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description" validate:"max=500"`
}

func (req *CreateArtistRequest) ToArtist() *Artist {
	return &Artist{
		Name:               req.Name,
		City:               req.City,
		State:              req.State,
		Phone:              req.Phone,
		Website:            req.Website,
		FacebookLink:       req.FacebookLink,
		ImageLink:          req.ImageLink,
		Genres:             pq.StringArray(req.Genres),
		SeekingVenue:       req.SeekingVenue,
		SeekingDescription: req.SeekingDescription,
	}
}

// UpdateArtistRequest carries a partial update; nil fields are left untouched.
type UpdateArtistRequest struct {
	Name               *string  `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	City               *string  `json:"city,omitempty" validate:"omitempty,min=1,max=120"`
	State              *string  `json:"state,omitempty" validate:"omitempty,usstate"`
	Phone              *string  `json:"phone,omitempty" validate:"omitempty,max=120"`
	Website            *string  `json:"website,omitempty" validate:"omitempty,max=500,url|len=0"`
	FacebookLink       *string  `json:"facebook_link,omitempty" validate:"omitempty,max=120,url|len=0"`
	ImageLink          *string  `json:"image_link,omitempty" validate:"omitempty,max=500,url|len=0"`
	Genres             []string `json:"genres,omitempty" validate:"omitempty,min=1,dive,genre"`
	SeekingVenue       *bool    `json:"seeking_venue,omitempty"`
	SeekingDescription *string  `json:"seeking_description,omitempty" validate:"omitempty,max=500"`
}

func (req *UpdateArtistRequest) Columns() map[string]any {
	cols := map[string]any{}
	setString(cols, "name", req.Name)
	setString(cols, "city", req.City)
	setString(cols, "state", req.State)
	setString(cols, "phone", req.Phone)
	setString(cols, "website", req.Website)
	setString(cols, "facebook_link", req.FacebookLink)
	setString(cols, "image_link", req.ImageLink)
	if req.Genres != nil {
		cols["genres"] = pq.StringArray(req.Genres)
	}
	if req.SeekingVenue != nil {
		cols["seeking_venue"] = *req.SeekingVenue
	}
	setString(cols, "seeking_description", req.SeekingDescription)
	return cols
}

type ArtistSummary struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// ArtistShow is a show as seen from its artist's page.
type ArtistShow struct {
	ShowID         int       `json:"show_id" db:"show_id"`
	VenueID        int       `json:"venue_id" db:"venue_id"`
	VenueName      string    `json:"venue_name" db:"venue_name"`
	VenueImageLink string    `json:"venue_image_link" db:"venue_image_link"`
	StartTime      time.Time `json:"start_time" db:"start_time"`
}

type ArtistDetail struct {
	*Artist
	PastShows          []ArtistShow `json:"past_shows"`
	UpcomingShows      []ArtistShow `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}
