package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/lib/pq"
	"showbook/internal/interfaces"
	"showbook/internal/models"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type storedShow struct {
	id, venueID, artistID int
	start                 time.Time
}

// memStore backs the mock repositories with plain maps.
type memStore struct {
	venues  map[int]*models.Venue
	artists map[int]*models.Artist
	shows   []storedShow
	nextID  int
	writes  int
	failAll error
}

func newMemStore() *memStore {
	return &memStore{venues: map[int]*models.Venue{}, artists: map[int]*models.Artist{}, nextID: 100}
}

func (s *memStore) addVenue(v models.Venue) *models.Venue {
	cp := v
	s.venues[cp.ID] = &cp
	return &cp
}

func (s *memStore) addArtist(a models.Artist) *models.Artist {
	cp := a
	s.artists[cp.ID] = &cp
	return &cp
}

func (s *memStore) addShow(id, venueID, artistID int, start time.Time) {
	s.shows = append(s.shows, storedShow{id: id, venueID: venueID, artistID: artistID, start: start})
}

func (s *memStore) upcoming(match func(storedShow) bool, now time.Time) int {
	n := 0
	for _, sh := range s.shows {
		if match(sh) && !models.IsPast(sh.start, now) {
			n++
		}
	}
	return n
}

type mockVenueRepo struct{ s *memStore }

var _ interfaces.VenueRepository = (*mockVenueRepo)(nil)

func (m *mockVenueRepo) ListDistinctCityState(ctx context.Context) ([]models.Location, error) {
	if m.s.failAll != nil {
		return nil, m.s.failAll
	}
	seen := map[models.Location]bool{}
	out := []models.Location{}
	for _, v := range m.s.venues {
		loc := models.Location{City: v.City, State: v.State}
		if !seen[loc] {
			seen[loc] = true
			out = append(out, loc)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].State != out[j].State {
			return out[i].State < out[j].State
		}
		return out[i].City < out[j].City
	})
	return out, nil
}

func (m *mockVenueRepo) FindByCityState(ctx context.Context, city, state string, now time.Time) ([]*models.Venue, error) {
	out := []*models.Venue{}
	for _, v := range m.s.venues {
		if v.City == city && v.State == state {
			cp := *v
			cp.NumUpcomingShows = m.s.upcoming(func(sh storedShow) bool { return sh.venueID == v.ID }, now)
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *mockVenueRepo) SearchByName(ctx context.Context, term string, now time.Time) (*models.SearchResult, error) {
	data := []models.SearchMatch{}
	for _, v := range m.s.venues {
		if strings.Contains(strings.ToLower(v.Name), strings.ToLower(term)) {
			data = append(data, models.SearchMatch{ID: v.ID, Name: v.Name})
		}
	}
	sort.Slice(data, func(i, j int) bool { return data[i].Name < data[j].Name })
	return &models.SearchResult{Count: len(data), Data: data}, nil
}

func (m *mockVenueRepo) Recent(ctx context.Context, limit int, now time.Time) ([]models.SearchMatch, error) {
	out := []models.SearchMatch{}
	for _, v := range m.s.venues {
		out = append(out, models.SearchMatch{ID: v.ID, Name: v.Name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockVenueRepo) GetByID(ctx context.Context, id int) (*models.Venue, error) {
	v, ok := m.s.venues[id]
	if !ok {
		return nil, fmt.Errorf("get venue by id: %w", interfaces.ErrNotFound)
	}
	cp := *v
	return &cp, nil
}

func (m *mockVenueRepo) ListShows(ctx context.Context, venueID int, now time.Time) ([]models.VenueShow, []models.VenueShow, error) {
	var shows []models.VenueShow
	for _, sh := range m.s.shows {
		if sh.venueID != venueID {
			continue
		}
		a := m.s.artists[sh.artistID]
		shows = append(shows, models.VenueShow{ShowID: sh.id, ArtistID: a.ID, ArtistName: a.Name, StartTime: sh.start})
	}
	past, upcoming := models.PartitionShows(shows, func(s models.VenueShow) time.Time { return s.StartTime }, now)
	return past, upcoming, nil
}

func (m *mockVenueRepo) Create(ctx context.Context, venue *models.Venue) error {
	m.s.writes++
	if m.s.failAll != nil {
		return m.s.failAll
	}
	m.s.nextID++
	venue.ID = m.s.nextID
	m.s.addVenue(*venue)
	return nil
}

func (m *mockVenueRepo) Update(ctx context.Context, id int, req *models.UpdateVenueRequest) error {
	m.s.writes++
	v, ok := m.s.venues[id]
	if !ok {
		return fmt.Errorf("update venue: %w", interfaces.ErrNotFound)
	}
	for col, val := range req.Columns() {
		switch col {
		case "name":
			v.Name = val.(string)
		case "city":
			v.City = val.(string)
		case "state":
			v.State = val.(string)
		case "phone":
			v.Phone = val.(string)
		case "image_link":
			v.ImageLink = val.(string)
		case "genres":
			v.Genres = val.(pq.StringArray)
		case "seeking_talent":
			v.SeekingTalent = val.(bool)
		case "seeking_description":
			v.SeekingDescription = val.(string)
		}
	}
	return nil
}

func (m *mockVenueRepo) Delete(ctx context.Context, id int) error {
	m.s.writes++
	if _, ok := m.s.venues[id]; !ok {
		return fmt.Errorf("delete venue: %w", interfaces.ErrNotFound)
	}
	var refs int64
	for _, sh := range m.s.shows {
		if sh.venueID == id {
			refs++
		}
	}
	if refs > 0 {
		return &interfaces.DeletionBlockedError{Resource: "venue", References: map[string]int64{"shows": refs}}
	}
	delete(m.s.venues, id)
	return nil
}

type mockArtistRepo struct{ s *memStore }

var _ interfaces.ArtistRepository = (*mockArtistRepo)(nil)

func (m *mockArtistRepo) List(ctx context.Context) ([]models.ArtistSummary, error) {
	out := []models.ArtistSummary{}
	for _, a := range m.s.artists {
		out = append(out, models.ArtistSummary{ID: a.ID, Name: a.Name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *mockArtistRepo) SearchByName(ctx context.Context, term string, now time.Time) (*models.SearchResult, error) {
	data := []models.SearchMatch{}
	for _, a := range m.s.artists {
		if strings.Contains(strings.ToLower(a.Name), strings.ToLower(term)) {
			data = append(data, models.SearchMatch{ID: a.ID, Name: a.Name})
		}
	}
	sort.Slice(data, func(i, j int) bool { return data[i].Name < data[j].Name })
	return &models.SearchResult{Count: len(data), Data: data}, nil
}

func (m *mockArtistRepo) Recent(ctx context.Context, limit int, now time.Time) ([]models.SearchMatch, error) {
	out := []models.SearchMatch{}
	for _, a := range m.s.artists {
		out = append(out, models.SearchMatch{ID: a.ID, Name: a.Name})
	}
	return out, nil
}

func (m *mockArtistRepo) GetByID(ctx context.Context, id int) (*models.Artist, error) {
	a, ok := m.s.artists[id]
	if !ok {
		return nil, fmt.Errorf("get artist by id: %w", interfaces.ErrNotFound)
	}
	cp := *a
	return &cp, nil
}

func (m *mockArtistRepo) ListShows(ctx context.Context, artistID int, now time.Time) ([]models.ArtistShow, []models.ArtistShow, error) {
	var shows []models.ArtistShow
	for _, sh := range m.s.shows {
		if sh.artistID != artistID {
			continue
		}
		v := m.s.venues[sh.venueID]
		shows = append(shows, models.ArtistShow{ShowID: sh.id, VenueID: v.ID, VenueName: v.Name, StartTime: sh.start})
	}
	past, upcoming := models.PartitionShows(shows, func(s models.ArtistShow) time.Time { return s.StartTime }, now)
	return past, upcoming, nil
}

func (m *mockArtistRepo) Create(ctx context.Context, artist *models.Artist) error {
	m.s.writes++
	m.s.nextID++
	artist.ID = m.s.nextID
	m.s.addArtist(*artist)
	return nil
}

func (m *mockArtistRepo) Update(ctx context.Context, id int, req *models.UpdateArtistRequest) error {
	m.s.writes++
	a, ok := m.s.artists[id]
	if !ok {
		return fmt.Errorf("update artist: %w", interfaces.ErrNotFound)
	}
	for col, val := range req.Columns() {
		switch col {
		case "name":
			a.Name = val.(string)
		case "city":
			a.City = val.(string)
		case "image_link":
			a.ImageLink = val.(string)
		case "seeking_venue":
			a.SeekingVenue = val.(bool)
		}
	}
	return nil
}

type mockShowRepo struct{ s *memStore }

var _ interfaces.ShowRepository = (*mockShowRepo)(nil)

func (m *mockShowRepo) ListWithParents(ctx context.Context) ([]models.ShowListing, error) {
	out := []models.ShowListing{}
	for _, sh := range m.s.shows {
		v, a := m.s.venues[sh.venueID], m.s.artists[sh.artistID]
		out = append(out, models.ShowListing{
			ID: sh.id, VenueID: v.ID, VenueName: v.Name,
			ArtistID: a.ID, ArtistName: a.Name, ArtistImageLink: a.ImageLink, StartTime: sh.start,
		})
	}
	return out, nil
}

// Create enforces the foreign keys the way the database would.
func (m *mockShowRepo) Create(ctx context.Context, show *models.Show) error {
	m.s.writes++
	_, venueOK := m.s.venues[show.VenueID]
	_, artistOK := m.s.artists[show.ArtistID]
	if !venueOK || !artistOK {
		return &interfaces.PersistenceError{
			Op:   "create show",
			Kind: interfaces.KindForeignKey,
			Err:  fmt.Errorf("violates foreign key constraint"),
		}
	}
	m.s.nextID++
	show.ID = m.s.nextID
	m.s.addShow(show.ID, show.VenueID, show.ArtistID, show.StartTime)
	return nil
}

type mockSeeder struct {
	s      *memStore
	calls  int
	seeded bool
}

func (m *mockSeeder) SeedIfEmpty(ctx context.Context) (bool, error) {
	m.calls++
	if len(m.s.venues) > 0 || len(m.s.artists) > 0 {
		return false, nil
	}
	m.s.addVenue(models.Venue{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA"})
	m.s.addArtist(models.Artist{ID: 4, Name: "Guns N Petals", City: "San Francisco", State: "CA"})
	m.seeded = true
	return true, nil
}

// seededStore mirrors the default directory rows.
func seededStore() *memStore {
	s := newMemStore()
	s.addVenue(models.Venue{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA", Phone: "123-123-1234",
		Genres: pq.StringArray{"Jazz", "Reggae"}, SeekingTalent: true, SeekingDescription: "We are on the lookout"})
	s.addVenue(models.Venue{ID: 2, Name: "The Dueling Pianos Bar", City: "New York", State: "NY", Genres: pq.StringArray{"Classical"}})
	s.addVenue(models.Venue{ID: 3, Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA", Genres: pq.StringArray{"Jazz"}})
	s.addArtist(models.Artist{ID: 4, Name: "Guns N Petals", City: "San Francisco", State: "CA", SeekingVenue: true})
	s.addArtist(models.Artist{ID: 5, Name: "Matt Quevedo", City: "New York", State: "NY"})
	s.addArtist(models.Artist{ID: 6, Name: "The Wild Sax Band", City: "San Francisco", State: "CA"})
	s.addShow(1, 1, 4, time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC))
	s.addShow(2, 3, 5, time.Date(2019, 6, 15, 23, 0, 0, 0, time.UTC))
	s.addShow(3, 3, 6, time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC))
	s.addShow(4, 3, 6, time.Date(2035, 4, 8, 20, 0, 0, 0, time.UTC))
	s.addShow(5, 3, 6, time.Date(2035, 4, 15, 20, 0, 0, 0, time.UTC))
	return s
}

func postForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}
