package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"showbook/internal/db"
	"showbook/internal/interfaces"
	"showbook/internal/models"
)

var venueColumns = []string{
	"v.id", "v.name", "v.address", "v.city", "v.state", "v.phone", "v.website",
	"v.facebook_link", "v.image_link", "v.genres", "v.seeking_talent",
	"v.seeking_description", "v.created_at", "v.updated_at",
}

type venueRepository struct {
	db *sqlx.DB
}

func NewVenueRepository(conn *sqlx.DB) interfaces.VenueRepository {
	return &venueRepository{db: conn}
}

func (r *venueRepository) ListDistinctCityState(ctx context.Context) ([]models.Location, error) {
	query, args, err := psql.Select("city", "state").Distinct().
		From("venues").
		OrderBy("state", "city").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build location query: %w", err)
	}

	locations := []models.Location{}
	if err := r.db.SelectContext(ctx, &locations, query, args...); err != nil {
		return nil, db.Classify("list venue locations", err)
	}
	return locations, nil
}

func (r *venueRepository) FindByCityState(ctx context.Context, city, state string, now time.Time) ([]*models.Venue, error) {
	query, args, err := psql.Select(venueColumns...).
		Column(showCount("venue_id", "v.id", true, now, "num_upcoming_shows")).
		Column(showCount("venue_id", "v.id", false, now, "num_past_shows")).
		From("venues v").
		Where(sq.Eq{"v.city": city, "v.state": state}).
		OrderBy("v.name", "v.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build venues by location query: %w", err)
	}

	venues := []*models.Venue{}
	if err := r.db.SelectContext(ctx, &venues, query, args...); err != nil {
		return nil, db.Classify("find venues by location", err)
	}
	return venues, nil
}

func (r *venueRepository) SearchByName(ctx context.Context, term string, now time.Time) (*models.SearchResult, error) {
	query, args, err := psql.Select("v.id", "v.name").
		Column(showCount("venue_id", "v.id", true, now, "num_upcoming_shows")).
		From("venues v").
		Where(sq.ILike{"v.name": containsPattern(term)}).
		OrderBy("v.name", "v.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build venue search query: %w", err)
	}

	matches := []models.SearchMatch{}
	if err := r.db.SelectContext(ctx, &matches, query, args...); err != nil {
		return nil, db.Classify("search venues", err)
	}
	return &models.SearchResult{Count: len(matches), Data: matches}, nil
}

func (r *venueRepository) Recent(ctx context.Context, limit int, now time.Time) ([]models.SearchMatch, error) {
	query, args, err := psql.Select("v.id", "v.name").
		Column(showCount("venue_id", "v.id", true, now, "num_upcoming_shows")).
		From("venues v").
		OrderBy("v.created_at DESC", "v.id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build recent venues query: %w", err)
	}

	matches := []models.SearchMatch{}
	if err := r.db.SelectContext(ctx, &matches, query, args...); err != nil {
		return nil, db.Classify("list recent venues", err)
	}
	return matches, nil
}

func (r *venueRepository) GetByID(ctx context.Context, id int) (*models.Venue, error) {
	query, args, err := psql.Select(venueColumns...).
		From("venues v").
		Where(sq.Eq{"v.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build venue query: %w", err)
	}

	var venue models.Venue
	if err := r.db.GetContext(ctx, &venue, query, args...); err != nil {
		return nil, db.Classify("get venue by id", err)
	}
	return &venue, nil
}

func (r *venueRepository) ListShows(ctx context.Context, venueID int, now time.Time) ([]models.VenueShow, []models.VenueShow, error) {
	query, args, err := psql.Select(
		"s.id AS show_id", "a.id AS artist_id", "a.name AS artist_name",
		"a.image_link AS artist_image_link", "s.start_time",
	).
		From("shows s").
		Join("artists a ON a.id = s.artist_id").
		Where(sq.Eq{"s.venue_id": venueID}).
		OrderBy("s.start_time", "s.id").
		ToSql()
	if err != nil {
		return nil, nil, fmt.Errorf("build venue shows query: %w", err)
	}

	var shows []models.VenueShow
	if err := r.db.SelectContext(ctx, &shows, query, args...); err != nil {
		return nil, nil, db.Classify("list venue shows", err)
	}
	past, upcoming := models.PartitionShows(shows, func(s models.VenueShow) time.Time { return s.StartTime }, now)
	return past, upcoming, nil
}

func (r *venueRepository) Create(ctx context.Context, venue *models.Venue) error {
	if len(venue.Genres) == 0 {
		venue.Genres = pq.StringArray{models.DefaultGenre}
	}

	query, args, err := psql.Insert("venues").
		Columns(
			"name", "address", "city", "state", "phone", "website", "facebook_link",
			"image_link", "genres", "seeking_talent", "seeking_description",
		).
		Values(
			venue.Name, venue.Address, venue.City, venue.State, venue.Phone, venue.Website,
			venue.FacebookLink, venue.ImageLink, venue.Genres, venue.SeekingTalent,
			venue.SeekingDescription,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build venue insert: %w", err)
	}

	err = db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		return tx.QueryRowxContext(ctx, query, args...).Scan(&venue.ID, &venue.CreatedAt, &venue.UpdatedAt)
	})
	if err != nil {
		log.Error().Err(err).Str("venue", venue.Name).Msg("create venue failed")
		return db.Classify("create venue", err)
	}
	return nil
}

func (r *venueRepository) Update(ctx context.Context, id int, req *models.UpdateVenueRequest) error {
	cols := req.Columns()

	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := lockRow(ctx, tx, "venues", id); err != nil {
			return err
		}
		if len(cols) == 0 {
			return nil
		}

		query, args, err := psql.Update("venues").
			SetMap(cols).
			Set("updated_at", sq.Expr("NOW()")).
			Where(sq.Eq{"id": id}).
			ToSql()
		if err != nil {
			return fmt.Errorf("build venue update: %w", err)
		}
		_, err = tx.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Error().Err(err).Int("venue_id", id).Msg("update venue failed")
		return db.Classify("update venue", err)
	}
	return nil
}

func (r *venueRepository) Delete(ctx context.Context, id int) error {
	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := lockRow(ctx, tx, "venues", id); err != nil {
			return err
		}

		var shows int64
		if err := tx.GetContext(ctx, &shows, `SELECT COUNT(*) FROM shows WHERE venue_id = $1`, id); err != nil {
			return fmt.Errorf("count venue shows: %w", err)
		}
		if shows > 0 {
			return &interfaces.DeletionBlockedError{
				Resource:   "venue",
				References: map[string]int64{"shows": shows},
			}
		}

		_, err := tx.ExecContext(ctx, `DELETE FROM venues WHERE id = $1`, id)
		return err
	})
	if err != nil {
		return db.Classify("delete venue", err)
	}
	return nil
}

// lockRow takes a row lock on table.id, returning sql.ErrNoRows when absent.
func lockRow(ctx context.Context, tx *sqlx.Tx, table string, id int) error {
	var locked int
	return tx.GetContext(ctx, &locked, `SELECT id FROM `+table+` WHERE id = $1 FOR UPDATE`, id)
}
