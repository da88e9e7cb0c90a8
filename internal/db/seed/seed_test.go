package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"showbook/internal/models"
)

func TestDefaultsAreConsistent(t *testing.T) {
	data, err := Defaults()
	require.NoError(t, err)

	require.Len(t, data.Venues, 3)
	require.Len(t, data.Artists, 3)
	require.Len(t, data.Shows, 5)

	venues := map[int]bool{}
	for _, v := range data.Venues {
		venues[v.ID] = true
		assert.True(t, models.IsState(v.State), v.Name)
		require.NotEmpty(t, v.Genres, v.Name)
		for _, g := range v.Genres {
			assert.True(t, models.IsGenre(g), "%s: %s", v.Name, g)
		}
	}

	artists := map[int]bool{}
	for _, a := range data.Artists {
		artists[a.ID] = true
		assert.True(t, models.IsState(a.State), a.Name)
		for _, g := range a.Genres {
			assert.True(t, models.IsGenre(g), "%s: %s", a.Name, g)
		}
	}

	for _, s := range data.Shows {
		assert.True(t, venues[s.VenueID], "show %d venue", s.ID)
		assert.True(t, artists[s.ArtistID], "show %d artist", s.ID)
		assert.False(t, s.StartTime.IsZero(), "show %d start", s.ID)
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	_, err := Parse([]byte("venues: [unterminated"))
	assert.Error(t, err)
}
