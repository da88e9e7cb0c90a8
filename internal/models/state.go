package models

// States lists the two-letter codes offered by the venue and artist forms.
var States = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH",
	"OK", "OR", "MD", "MA", "MI", "MN", "MS", "MO", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI",
	"WY",
}

var stateSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(States))
	for _, s := range States {
		m[s] = struct{}{}
	}
	return m
}()

func IsState(s string) bool {
	_, ok := stateSet[s]
	return ok
}

// FormOptions is returned by the GET side of the create and edit forms.
type FormOptions struct {
	Genres []string `json:"genres"`
	States []string `json:"states"`
}

func NewFormOptions() FormOptions {
	return FormOptions{Genres: Genres, States: States}
}

// VenueEditForm is the edit form prefilled with the stored venue.
type VenueEditForm struct {
	FormOptions
	Venue *Venue `json:"venue"`
}

// ArtistEditForm is the edit form prefilled with the stored artist.
type ArtistEditForm struct {
	FormOptions
	Artist *Artist `json:"artist"`
}

// ParseCheckbox maps a submitted checkbox value to a bool. Only the literal
// "y" is true.
func ParseCheckbox(v string) bool {
	return v == "y"
}
