package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"showbook/internal/db"
	"showbook/internal/db/seed"
	"showbook/internal/interfaces"
)

type seedRepository struct {
	db   *sqlx.DB
	data func() (*seed.Data, error)
}

// NewSeeder returns a Seeder loading the embedded default rows.
func NewSeeder(conn *sqlx.DB) interfaces.Seeder {
	return &seedRepository{db: conn, data: seed.Defaults}
}

const (
	insertSeedVenue = `INSERT INTO venues (id, name, address, city, state, phone, website, facebook_link,
		image_link, genres, seeking_talent, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO NOTHING`
	insertSeedArtist = `INSERT INTO artists (id, name, city, state, phone, website, facebook_link,
		image_link, genres, seeking_venue, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO NOTHING`
	insertSeedShow = `INSERT INTO shows (id, venue_id, artist_id, start_time)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING`
)

// SeedIfEmpty loads the defaults when both venues and artists are empty. Rows
// carry fixed ids, so concurrent callers cannot insert duplicates.
func (r *seedRepository) SeedIfEmpty(ctx context.Context) (bool, error) {
	var populated bool
	err := r.db.GetContext(ctx, &populated,
		`SELECT EXISTS (SELECT 1 FROM venues) OR EXISTS (SELECT 1 FROM artists)`)
	if err != nil {
		return false, db.Classify("check seed state", err)
	}
	if populated {
		return false, nil
	}

	data, err := r.data()
	if err != nil {
		return false, err
	}

	err = db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		for _, v := range data.Venues {
			if _, err := tx.ExecContext(ctx, insertSeedVenue,
				v.ID, v.Name, v.Address, v.City, v.State, v.Phone, v.Website, v.FacebookLink,
				v.ImageLink, pq.StringArray(v.Genres), v.SeekingTalent, v.SeekingDescription,
			); err != nil {
				return fmt.Errorf("seed venue %d: %w", v.ID, err)
			}
		}
		for _, a := range data.Artists {
			if _, err := tx.ExecContext(ctx, insertSeedArtist,
				a.ID, a.Name, a.City, a.State, a.Phone, a.Website, a.FacebookLink,
				a.ImageLink, pq.StringArray(a.Genres), a.SeekingVenue, a.SeekingDescription,
			); err != nil {
				return fmt.Errorf("seed artist %d: %w", a.ID, err)
			}
		}
		for _, s := range data.Shows {
			if _, err := tx.ExecContext(ctx, insertSeedShow, s.ID, s.VenueID, s.ArtistID, s.StartTime); err != nil {
				return fmt.Errorf("seed show %d: %w", s.ID, err)
			}
		}
		for _, table := range []string{"venues", "artists", "shows"} {
			if _, err := tx.ExecContext(ctx, resetSequence(table)); err != nil {
				return fmt.Errorf("reset %s sequence: %w", table, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("seeding failed")
		return false, db.Classify("seed directory", err)
	}

	log.Info().
		Int("venues", len(data.Venues)).
		Int("artists", len(data.Artists)).
		Int("shows", len(data.Shows)).
		Msg("seeded default directory")
	return true, nil
}

// resetSequence moves the serial sequence of table past its highest id.
func resetSequence(table string) string {
	return fmt.Sprintf(
		`SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE((SELECT MAX(id) FROM %s), 0) + 1, false)`,
		table, table,
	)
}
