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

var artistColumns = []string{
	"a.id", "a.name", "a.city", "a.state", "a.phone", "a.website",
	"a.facebook_link", "a.image_link", "a.genres", "a.seeking_venue",
	"a.seeking_description", "a.created_at", "a.updated_at",
}

type artistRepository struct {
	db *sqlx.DB
}

func NewArtistRepository(conn *sqlx.DB) interfaces.ArtistRepository {
	return &artistRepository{db: conn}
}

func (r *artistRepository) List(ctx context.Context) ([]models.ArtistSummary, error) {
	query, args, err := psql.Select("id", "name").
		From("artists").
		OrderBy("name", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build artist list query: %w", err)
	}

	artists := []models.ArtistSummary{}
	if err := r.db.SelectContext(ctx, &artists, query, args...); err != nil {
		return nil, db.Classify("list artists", err)
	}
	return artists, nil
}

func (r *artistRepository) SearchByName(ctx context.Context, term string, now time.Time) (*models.SearchResult, error) {
	query, args, err := psql.Select("a.id", "a.name").
		Column(showCount("artist_id", "a.id", true, now, "num_upcoming_shows")).
		From("artists a").
		Where(sq.ILike{"a.name": containsPattern(term)}).
		OrderBy("a.name", "a.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build artist search query: %w", err)
	}

	matches := []models.SearchMatch{}
	if err := r.db.SelectContext(ctx, &matches, query, args...); err != nil {
		return nil, db.Classify("search artists", err)
	}
	return &models.SearchResult{Count: len(matches), Data: matches}, nil
}

func (r *artistRepository) Recent(ctx context.Context, limit int, now time.Time) ([]models.SearchMatch, error) {
	query, args, err := psql.Select("a.id", "a.name").
		Column(showCount("artist_id", "a.id", true, now, "num_upcoming_shows")).
		From("artists a").
		OrderBy("a.created_at DESC", "a.id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build recent artists query: %w", err)
	}

	matches := []models.SearchMatch{}
	if err := r.db.SelectContext(ctx, &matches, query, args...); err != nil {
		return nil, db.Classify("list recent artists", err)
	}
	return matches, nil
}

func (r *artistRepository) GetByID(ctx context.Context, id int) (*models.Artist, error) {
	query, args, err := psql.Select(artistColumns...).
		From("artists a").
		Where(sq.Eq{"a.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build artist query: %w", err)
	}

	var artist models.Artist
	if err := r.db.GetContext(ctx, &artist, query, args...); err != nil {
		return nil, db.Classify("get artist by id", err)
	}
	return &artist, nil
}

func (r *artistRepository) ListShows(ctx context.Context, artistID int, now time.Time) ([]models.ArtistShow, []models.ArtistShow, error) {
	query, args, err := psql.Select(
		"s.id AS show_id", "v.id AS venue_id", "v.name AS venue_name",
		"v.image_link AS venue_image_link", "s.start_time",
	).
		From("shows s").
		Join("venues v ON v.id = s.venue_id").
		Where(sq.Eq{"s.artist_id": artistID}).
		OrderBy("s.start_time", "s.id").
		ToSql()
	if err != nil {
		return nil, nil, fmt.Errorf("build artist shows query: %w", err)
	}

	var shows []models.ArtistShow
	if err := r.db.SelectContext(ctx, &shows, query, args...); err != nil {
		return nil, nil, db.Classify("list artist shows", err)
	}
	past, upcoming := models.PartitionShows(shows, func(s models.ArtistShow) time.Time { return s.StartTime }, now)
	return past, upcoming, nil
}

func (r *artistRepository) Create(ctx context.Context, artist *models.Artist) error {
	if len(artist.Genres) == 0 {
		artist.Genres = pq.StringArray{models.DefaultGenre}
	}

	query, args, err := psql.Insert("artists").
		Columns(
			"name", "city", "state", "phone", "website", "facebook_link",
			"image_link", "genres", "seeking_venue", "seeking_description",
		).
		Values(
			artist.Name, artist.City, artist.State, artist.Phone, artist.Website,
			artist.FacebookLink, artist.ImageLink, artist.Genres, artist.SeekingVenue,
			artist.SeekingDescription,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build artist insert: %w", err)
	}

	err = db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		return tx.QueryRowxContext(ctx, query, args...).Scan(&artist.ID, &artist.CreatedAt, &artist.UpdatedAt)
	})
	if err != nil {
		log.Error().Err(err).Str("artist", artist.Name).Msg("create artist failed")
		return db.Classify("create artist", err)
	}
	return nil
}

func (r *artistRepository) Update(ctx context.Context, id int, req *models.UpdateArtistRequest) error {
	cols := req.Columns()

	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := lockRow(ctx, tx, "artists", id); err != nil {
			return err
		}
		if len(cols) == 0 {
			return nil
		}

		query, args, err := psql.Update("artists").
			SetMap(cols).
			Set("updated_at", sq.Expr("NOW()")).
			Where(sq.Eq{"id": id}).
			ToSql()
		if err != nil {
			return fmt.Errorf("build artist update: %w", err)
		}
		_, err = tx.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Error().Err(err).Int("artist_id", id).Msg("update artist failed")
		return db.Classify("update artist", err)
	}
	return nil
}
