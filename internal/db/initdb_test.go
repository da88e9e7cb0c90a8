package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDBName(t *testing.T) {
	name, err := extractDBName("postgres://u:p@localhost:5432/showbook?sslmode=disable")
	require.NoError(t, err)
	assert.Equal(t, "showbook", name)

	name, err = extractDBName("host=localhost user=u dbname=showbook sslmode=disable")
	require.NoError(t, err)
	assert.Equal(t, "showbook", name)

	_, err = extractDBName("host=localhost user=u")
	assert.Error(t, err)

	_, err = extractDBName("postgres://u:p@localhost:5432/")
	assert.Error(t, err)
}

func TestReplaceDBName(t *testing.T) {
	out, err := replaceDBName("postgresql://u:p@db:5432/showbook?sslmode=disable", "postgres")
	require.NoError(t, err)
	assert.Equal(t, "postgresql://u:p@db:5432/postgres?sslmode=disable", out)

	out, err = replaceDBName("host=db dbname=showbook sslmode=disable", "postgres")
	require.NoError(t, err)
	assert.Equal(t, "host=db dbname=postgres sslmode=disable", out)
}
