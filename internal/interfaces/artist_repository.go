package interfaces

import (
	"context"
	"time"

	"showbook/internal/models"
)

// ArtistRepository defines the data operations on artists and their shows.
type ArtistRepository interface {
	List(ctx context.Context) ([]models.ArtistSummary, error)
	SearchByName(ctx context.Context, term string, now time.Time) (*models.SearchResult, error)
	Recent(ctx context.Context, limit int, now time.Time) ([]models.SearchMatch, error)
	GetByID(ctx context.Context, id int) (*models.Artist, error)
	ListShows(ctx context.Context, artistID int, now time.Time) (past, upcoming []models.ArtistShow, err error)
	Create(ctx context.Context, artist *models.Artist) error
	Update(ctx context.Context, id int, req *models.UpdateArtistRequest) error
}
