package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoad(t *testing.T) *Store {
	t.Helper()
	s, err := Load()
	require.NoError(t, err)
	return s
}

func TestLoadEmbedded(t *testing.T) {
	s := mustLoad(t)
	assert.Equal(t, 32, s.Len())

	m, ok := s.ByID(2)
	require.True(t, ok)
	assert.Equal(t, "The Dark Knight", m.Title)

	_, ok = s.ByID(999)
	assert.False(t, ok)
}

func TestDecodeRejectsBadInput(t *testing.T) {
	_, err := decode([]byte("{no es json"))
	assert.Error(t, err)

	_, err = decode([]byte("[]"))
	assert.Error(t, err)
}

func TestByCategoryTopRated(t *testing.T) {
	s := mustLoad(t)
	top := s.ByCategory(CategoryTopRated)

	require.Len(t, top, 5)
	// el mejor rating primero, empates en orden de catálogo
	ids := []int{top[0].ID, top[1].ID, top[2].ID, top[3].ID, top[4].ID}
	assert.Equal(t, []int{2, 3, 4, 5, 6}, ids)
	for i := 1; i < len(top); i++ {
		assert.LessOrEqual(t, top[i].VoteAverage, top[i-1].VoteAverage)
	}
}

func TestByCategoryGenre(t *testing.T) {
	s := mustLoad(t)

	action := s.ByCategory(CategoryAction)
	require.Len(t, action, 5)
	for _, m := range action {
		assert.True(t, m.HasGenre("Action"), "%s no es Action", m.Title)
	}

	horror := s.ByCategory(CategoryHorror)
	require.Len(t, horror, 5)
	for _, m := range horror {
		assert.True(t, m.HasGenre("Horror"), "%s no es Horror", m.Title)
	}
}

func TestByCategoryPremium(t *testing.T) {
	s := mustLoad(t)
	prem := s.ByCategory(CategoryPremium)

	require.Len(t, prem, 4)
	for _, m := range prem {
		assert.True(t, m.IsPremium)
		require.NotNil(t, m.RentalPrice)
		require.NotNil(t, m.PurchasePrice)
	}
}

func TestByCategoryTrendingIsStable(t *testing.T) {
	s := mustLoad(t)

	a := s.ByCategory(CategoryTrending)
	b := s.ByCategory(CategoryTrending)

	require.Len(t, a, 5)
	// la muestra se sortea una vez al cargar y queda fija
	assert.Equal(t, a, b)

	seen := make(map[int]bool)
	for _, m := range a {
		assert.False(t, seen[m.ID], "película repetida en trending: %d", m.ID)
		seen[m.ID] = true
	}
}

func TestByCategoryUnknownReturnsAll(t *testing.T) {
	s := mustLoad(t)
	assert.Len(t, s.ByCategory(CategoryDefault), s.Len())
	assert.Len(t, s.ByCategory("no-existe"), s.Len())
}

func TestSearch(t *testing.T) {
	s := mustLoad(t)

	// case-insensitive sobre título
	got := s.Search("INCEPTION")
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)

	// "batman" matchea The Dark Knight por overview y The Batman por título
	ids := make(map[int]bool)
	for _, m := range s.Search("batman") {
		ids[m.ID] = true
	}
	assert.True(t, ids[2])
	assert.True(t, ids[31])

	// por género
	scifi := s.Search("sci-fi")
	assert.NotEmpty(t, scifi)
	for _, m := range scifi {
		assert.True(t, m.HasGenre("Sci-Fi"))
	}

	// el query se matchea tal cual: los espacios literales cuentan
	knight := s.Search(" knight")
	require.NotEmpty(t, knight)
	for _, m := range knight {
		assert.Contains(t, strings.ToLower(m.Title), " knight")
	}
	assert.Empty(t, s.Search("   "))

	assert.Nil(t, s.Search(""))
	assert.Empty(t, s.Search("zzzzzzz"))
}

func TestSimilar(t *testing.T) {
	s := mustLoad(t)

	assert.Nil(t, s.Similar(999))

	src, _ := s.ByID(1) // Inception: Sci-Fi, Action, Thriller
	got := s.Similar(1)
	require.Len(t, got, 4)

	srcGenres := make(map[string]bool)
	for _, g := range src.Genres {
		srcGenres[g] = true
	}
	for _, m := range got {
		assert.NotEqual(t, src.ID, m.ID)
		shared := false
		for _, g := range m.Genres {
			if srcGenres[g] {
				shared = true
			}
		}
		assert.True(t, shared, "%s no comparte género con %s", m.Title, src.Title)
	}
}
