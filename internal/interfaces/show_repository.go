package interfaces

import (
	"context"

	"showbook/internal/models"
)

type ShowRepository interface {
	ListWithParents(ctx context.Context) ([]models.ShowListing, error)
	Create(ctx context.Context, show *models.Show) error
}

// Seeder loads the default rows when the directory is empty.
type Seeder interface {
	SeedIfEmpty(ctx context.Context) (bool, error)
}
