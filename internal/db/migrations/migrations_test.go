package migrations

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"testing/fstest"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMigrationFilename(t *testing.T) {
	version, name, err := parseMigrationFilename("0001_create_directory.up.sql")
	require.NoError(t, err)
	assert.Equal(t, 1, version)
	assert.Equal(t, "create_directory", name)

	_, _, err = parseMigrationFilename("create.up.sql")
	assert.Error(t, err)

	_, _, err = parseMigrationFilename("abc_create.up.sql")
	assert.Error(t, err)
}

func TestEmbeddedMigrationsLoad(t *testing.T) {
	migrations, err := loadMigrations(files)
	require.NoError(t, err)
	require.NotEmpty(t, migrations)

	first := migrations[0]
	assert.Equal(t, 1, first.Version)
	assert.Contains(t, first.Up, "CREATE TABLE IF NOT EXISTS venues")
	assert.Contains(t, first.Up, "CREATE TABLE IF NOT EXISTS shows")
	assert.Contains(t, first.Down, "DROP TABLE IF EXISTS shows")
}

func TestLoadMigrationsSortsAndToleratesMissingDown(t *testing.T) {
	fsys := fstest.MapFS{
		"sql/0002_second.up.sql":  {Data: []byte("SELECT 2")},
		"sql/0001_first.up.sql":   {Data: []byte("SELECT 1")},
		"sql/0001_first.down.sql": {Data: []byte("SELECT -1")},
	}

	migrations, err := loadMigrations(fsys)
	require.NoError(t, err)
	require.Len(t, migrations, 2)
	assert.Equal(t, "first", migrations[0].Name)
	assert.Equal(t, "SELECT -1", migrations[0].Down)
	assert.Equal(t, "second", migrations[1].Name)
	assert.Empty(t, migrations[1].Down)
}

func TestRunMigrationsSkipsApplied(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	fsys := fstest.MapFS{
		"sql/0001_first.up.sql":  {Data: []byte("CREATE TABLE a (id INT)")},
		"sql/0002_second.up.sql": {Data: []byte("CREATE TABLE b (id INT)")},
	}

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS schema_migrations")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT version FROM schema_migrations ORDER BY version")).
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(1))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE b (id INT)")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO schema_migrations (version, name)")).
		WithArgs(2, "second").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, runMigrations(context.Background(), db, fsys))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrationsRollsBackFailedMigration(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	fsys := fstest.MapFS{
		"sql/0001_first.up.sql": {Data: []byte("CREATE TABLE a (id INT)")},
	}

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS schema_migrations")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT version FROM schema_migrations")).
		WillReturnRows(sqlmock.NewRows([]string{"version"}))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE a (id INT)")).
		WillReturnError(errors.New("syntax error"))
	mock.ExpectRollback()

	err = runMigrations(context.Background(), db, fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "first")
	assert.NoError(t, mock.ExpectationsWereMet())
}
