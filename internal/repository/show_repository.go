package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"showbook/internal/db"
	"showbook/internal/interfaces"
	"showbook/internal/models"
)

type showRepository struct {
	db *sqlx.DB
}

func NewShowRepository(conn *sqlx.DB) interfaces.ShowRepository {
	return &showRepository{db: conn}
}

func (r *showRepository) ListWithParents(ctx context.Context) ([]models.ShowListing, error) {
	query, args, err := psql.Select(
		"s.id", "s.venue_id", "v.name AS venue_name", "s.artist_id",
		"a.name AS artist_name", "a.image_link AS artist_image_link", "s.start_time",
	).
		From("shows s").
		Join("venues v ON v.id = s.venue_id").
		Join("artists a ON a.id = s.artist_id").
		OrderBy("s.start_time", "s.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build show listing query: %w", err)
	}

	shows := []models.ShowListing{}
	if err := r.db.SelectContext(ctx, &shows, query, args...); err != nil {
		return nil, db.Classify("list shows", err)
	}
	return shows, nil
}

// Create inserts a show. An unknown venue or artist id surfaces as a
// PersistenceError of kind foreign_key.
func (r *showRepository) Create(ctx context.Context, show *models.Show) error {
	query, args, err := psql.Insert("shows").
		Columns("venue_id", "artist_id", "start_time").
		Values(show.VenueID, show.ArtistID, show.StartTime).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build show insert: %w", err)
	}

	err = db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		return tx.QueryRowxContext(ctx, query, args...).Scan(&show.ID, &show.CreatedAt)
	})
	if err != nil {
		log.Error().Err(err).Int("venue_id", show.VenueID).Int("artist_id", show.ArtistID).Msg("create show failed")
		return db.Classify("create show", err)
	}
	return nil
}
