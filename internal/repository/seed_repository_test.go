package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"showbook/internal/db/seed"
)

func TestSeedSkipsPopulatedDirectory(t *testing.T) {
	conn, mock := newMockDB(t)
	seeder := NewSeeder(conn)

	mock.ExpectQuery(`SELECT EXISTS`).
		WillReturnRows(sqlmock.NewRows([]string{"populated"}).AddRow(true))

	seeded, err := seeder.SeedIfEmpty(context.Background())
	require.NoError(t, err)
	assert.False(t, seeded)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedInsertsIdempotentlyInOneTransaction(t *testing.T) {
	conn, mock := newMockDB(t)
	seeder := &seedRepository{db: conn, data: func() (*seed.Data, error) {
		return &seed.Data{
			Venues:  []seed.Venue{{ID: 1, Name: "The Musical Hop", Genres: []string{"Jazz"}}},
			Artists: []seed.Artist{{ID: 4, Name: "Guns N Petals", Genres: []string{"Rock n Roll"}}},
			Shows:   []seed.Show{{ID: 1, VenueID: 1, ArtistID: 4, StartTime: time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)}},
		}, nil
	}}

	mock.ExpectQuery(`SELECT EXISTS`).
		WillReturnRows(sqlmock.NewRows([]string{"populated"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO venues .* ON CONFLICT \(id\) DO NOTHING`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO artists .* ON CONFLICT \(id\) DO NOTHING`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO shows .* ON CONFLICT \(id\) DO NOTHING`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`setval\(pg_get_serial_sequence\('venues'`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`setval\(pg_get_serial_sequence\('artists'`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`setval\(pg_get_serial_sequence\('shows'`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	seeded, err := seeder.SeedIfEmpty(context.Background())
	require.NoError(t, err)
	assert.True(t, seeded)
	require.NoError(t, mock.ExpectationsWereMet())
}
