package models

import (
	"time"

	"github.com/lib/pq"
)

type Venue struct {
	ID                 int            `json:"id" db:"id"`
	Name               string         `json:"name" db:"name"`
	Address            string         `json:"address" db:"address"`
	City               string         `json:"city" db:"city"`
	State              string         `json:"state" db:"state"`
	Phone              string         `json:"phone" db:"phone"`
	Website            string         `json:"website" db:"website"`
	FacebookLink       string         `json:"facebook_link" db:"facebook_link"`
	ImageLink          string         `json:"image_link" db:"image_link"`
	Genres             pq.StringArray `json:"genres" db:"genres"`
	SeekingTalent      bool           `json:"seeking_talent" db:"seeking_talent"`
	SeekingDescription string         `json:"seeking_description" db:"seeking_description"`
	// Derived from shows at query time, never stored.
	NumUpcomingShows int       `json:"num_upcoming_shows" db:"num_upcoming_shows"`
	NumPastShows     int       `json:"num_past_shows" db:"num_past_shows"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

type CreateVenueRequest struct {
	Name               string   `json:"name" validate:"required,max=255"`
	Address            string   `json:"address" validate:"required,max=120"`
	City               string   `json:"city" validate:"required,max=120"`
	State              string   `json:"state" validate:"required,usstate"`
	Phone              string   `json:"phone" validate:"omitempty,max=120"`
	Website            string   `json:"website" validate:"omitempty,url,max=500"`
	FacebookLink       string   `json:"facebook_link" validate:"omitempty,url,max=120"`
	ImageLink          string   `json:"image_link" validate:"omitempty,url,max=500"`
	Genres             []string `json:"genres" validate:"required,min=1,dive,genre"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description" validate:"max=500"`
}

// ToVenue copies the submitted fields into a new, unsaved Venue.
func (req *CreateVenueRequest) ToVenue() *Venue {
	return &Venue{
		Name:               req.Name,
		Address:            req.Address,
		City:               req.City,
		State:              req.State,
		Phone:              req.Phone,
		Website:            req.Website,
		FacebookLink:       req.FacebookLink,
		ImageLink:          req.ImageLink,
		Genres:             pq.StringArray(req.Genres),
		SeekingTalent:      req.SeekingTalent,
		SeekingDescription: req.SeekingDescription,
	}
}

// UpdateVenueRequest carries a partial update; nil fields are left untouched.
type UpdateVenueRequest struct {
	Name               *string  `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Address            *string  `json:"address,omitempty" validate:"omitempty,min=1,max=120"`
	City               *string  `json:"city,omitempty" validate:"omitempty,min=1,max=120"`
	State              *string  `json:"state,omitempty" validate:"omitempty,usstate"`
	Phone              *string  `json:"phone,omitempty" validate:"omitempty,max=120"`
	Website            *string  `json:"website,omitempty" validate:"omitempty,max=500,url|len=0"`
	FacebookLink       *string  `json:"facebook_link,omitempty" validate:"omitempty,max=120,url|len=0"`
	ImageLink          *string  `json:"image_link,omitempty" validate:"omitempty,max=500,url|len=0"`
	Genres             []string `json:"genres,omitempty" validate:"omitempty,min=1,dive,genre"`
	SeekingTalent      *bool    `json:"seeking_talent,omitempty"`
	SeekingDescription *string  `json:"seeking_description,omitempty" validate:"omitempty,max=500"`
}

// Columns returns the column/value pairs that the update sets.
func (req *UpdateVenueRequest) Columns() map[string]any {
	cols := map[string]any{}
	setString(cols, "name", req.Name)
	setString(cols, "address", req.Address)
	setString(cols, "city", req.City)
	setString(cols, "state", req.State)
	setString(cols, "phone", req.Phone)
	setString(cols, "website", req.Website)
	setString(cols, "facebook_link", req.FacebookLink)
	setString(cols, "image_link", req.ImageLink)
	if req.Genres != nil {
		cols["genres"] = pq.StringArray(req.Genres)
	}
	if req.SeekingTalent != nil {
		cols["seeking_talent"] = *req.SeekingTalent
	}
	setString(cols, "seeking_description", req.SeekingDescription)
	return cols
}

func setString(cols map[string]any, name string, v *string) {
	if v != nil {
		cols[name] = *v
	}
}

// Location is a distinct (city, state) pair that venues are grouped under.
type Location struct {
	City  string `json:"city" db:"city"`
	State string `json:"state" db:"state"`
}

type VenueSummary struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// VenueArea groups the venues of one location for the venue listing.
type VenueArea struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

// VenueShow is a show as seen from its venue's page.
type VenueShow struct {
	ShowID          int       `json:"show_id" db:"show_id"`
	ArtistID        int       `json:"artist_id" db:"artist_id"`
	ArtistName      string    `json:"artist_name" db:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link" db:"artist_image_link"`
	StartTime       time.Time `json:"start_time" db:"start_time"`
}

type VenueDetail struct {
	*Venue
	PastShows          []VenueShow `json:"past_shows"`
	UpcomingShows      []VenueShow `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}
