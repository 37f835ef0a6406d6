package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func TestApplyFiltersIdentity(t *testing.T) {
	s := mustLoad(t)
	all := s.All()

	got := ApplyFilters(all, Filters{})
	assert.Equal(t, all, got)
}

func TestApplyFiltersGenreIsCaseInsensitive(t *testing.T) {
	s := mustLoad(t)

	got := ApplyFilters(s.All(), Filters{Genre: "horror"})
	require.NotEmpty(t, got)
	for _, m := range got {
		assert.True(t, m.HasGenre("Horror"))
	}
}

func TestApplyFiltersYear(t *testing.T) {
	s := mustLoad(t)

	got := ApplyFilters(s.All(), Filters{Year: 1994})
	var ids []int
	for _, m := range got {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []int{5, 6, 7}, ids)
}

func TestApplyFiltersComposition(t *testing.T) {
	s := mustLoad(t)

	// horror con rating >= 8 (el piso de 8.4 es 8)
	got := ApplyFilters(s.All(), Filters{Genre: "Horror", MinRating: 8})
	var ids []int
	for _, m := range got {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []int{20, 25}, ids)
}

func TestApplyFiltersSortVoteAverageDesc(t *testing.T) {
	s := mustLoad(t)

	got := ApplyFilters(s.All(), Filters{SortBy: SortByVoteAverage, SortOrder: SortDesc})
	require.Len(t, got, s.Len())
	assert.Equal(t, 2, got[0].ID) // The Dark Knight, 9.0
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i].VoteAverage, got[i-1].VoteAverage)
	}
}

func TestApplyFiltersSortReleaseDateAsc(t *testing.T) {
	s := mustLoad(t)

	got := ApplyFilters(s.All(), Filters{SortBy: SortByReleaseDate, SortOrder: SortAsc})
	require.Len(t, got, s.Len())
	assert.Equal(t, 4, got[0].ID) // The Godfather, 1972
	for i := 1; i < len(got); i++ {
		assert.False(t, releaseTime(got[i]).Before(releaseTime(got[i-1])))
	}
}

func TestApplyFiltersSortTitle(t *testing.T) {
	s := mustLoad(t)

	got := ApplyFilters(s.All(), Filters{SortBy: SortByTitle})
	require.Len(t, got, s.Len())

	c := collate.New(language.Und)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, c.CompareString(got[i-1].Title, got[i].Title), 0)
	}
}

func TestApplyFiltersUnknownSortKeepsOrder(t *testing.T) {
	s := mustLoad(t)

	got := ApplyFilters(s.All(), Filters{SortBy: "whatever"})
	require.Len(t, got, s.Len())
	for i, m := range s.All() {
		assert.Equal(t, m.ID, got[i].ID)
	}
}
