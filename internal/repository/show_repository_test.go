package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"showbook/internal/interfaces"
	"showbook/internal/models"
)

func TestShowCreateReturnsID(t *testing.T) {
	conn, mock := newMockDB(t)
	repo := NewShowRepository(conn)
	start := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO shows \(venue_id,artist_id,start_time\) VALUES \(\$1,\$2,\$3\) RETURNING id, created_at`).
		WithArgs(3, 6, start).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(6, time.Now()))
	mock.ExpectCommit()

	show := &models.Show{VenueID: 3, ArtistID: 6, StartTime: start}
	require.NoError(t, repo.Create(context.Background(), show))
	assert.Equal(t, 6, show.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestShowCreateUnknownVenueRollsBack(t *testing.T) {
	conn, mock := newMockDB(t)
	repo := NewShowRepository(conn)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO shows`).
		WillReturnError(&pq.Error{Code: "23503", Constraint: "shows_venue_id_fkey"})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &models.Show{VenueID: 999, ArtistID: 4, StartTime: time.Now()})
	var pe *interfaces.PersistenceError
	require.True(t, errors.As(err, &pe), "got %v", err)
	assert.Equal(t, interfaces.KindForeignKey, pe.Kind)
	assert.Equal(t, "shows_venue_id_fkey", pe.Constraint)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestShowListWithParents(t *testing.T) {
	conn, mock := newMockDB(t)
	repo := NewShowRepository(conn)
	start := time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM shows s JOIN venues v ON v.id = s.venue_id JOIN artists a ON a.id = s.artist_id ORDER BY s.start_time, s.id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "venue_id", "venue_name", "artist_id", "artist_name", "artist_image_link", "start_time"}).
			AddRow(1, 1, "The Musical Hop", 4, "Guns N Petals", "https://img", start))

	shows, err := repo.ListWithParents(context.Background())
	require.NoError(t, err)
	require.Len(t, shows, 1)
	assert.Equal(t, "Guns N Petals", shows[0].ArtistName)
	assert.True(t, shows[0].StartTime.Equal(start))
}
