package interfaces

import (
	"context"
	"time"

	"showbook/internal/models"
)

// VenueRepository defines the data operations on venues and their shows.
type VenueRepository interface {
	ListDistinctCityState(ctx context.Context) ([]models.Location, error)
	FindByCityState(ctx context.Context, city, state string, now time.Time) ([]*models.Venue, error)
	SearchByName(ctx context.Context, term string, now time.Time) (*models.SearchResult, error)
	Recent(ctx context.Context, limit int, now time.Time) ([]models.SearchMatch, error)
	GetByID(ctx context.Context, id int) (*models.Venue, error)
	ListShows(ctx context.Context, venueID int, now time.Time) (past, upcoming []models.VenueShow, err error)
	Create(ctx context.Context, venue *models.Venue) error
	Update(ctx context.Context, id int, req *models.UpdateVenueRequest) error
	Delete(ctx context.Context, id int) error
}
