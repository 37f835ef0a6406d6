// internal/catalog/filter.go
package catalog

import (
	"math"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/models"
)

// Campos de ordenado soportados.
const (
	SortByTitle       = "title"
	SortByReleaseDate = "releaseDate"
	SortByVoteAverage = "voteAverage"

	SortAsc  = "asc"
	SortDesc = "desc"
)

// Filters es la especificación del pipeline de filtros de una categoría.
// Campo en cero = filtro ausente.
type Filters struct {
	Genre     string `json:"genre,omitempty"`
	Year      int    `json:"year,omitempty"`
	MinRating int    `json:"minRating,omitempty"`
	SortBy    string `json:"sortBy,omitempty"`
	SortOrder string `json:"sortOrder,omitempty"` // asc|desc, default asc
}

// IsZero indica que no hay ningún filtro ni orden que aplicar.
func (f Filters) IsZero() bool {
	return f.Genre == "" && f.Year == 0 && f.MinRating == 0 && f.SortBy == ""
}

// ApplyFilters aplica género → año → minRating → orden, en ese orden.
// Sin filtros es la identidad: misma lista, mismo orden.
func ApplyFilters(list []models.Movie, f Filters) []models.Movie {
	if f.IsZero() {
		return list
	}

	out := make([]models.Movie, 0, len(list))
	genre := strings.ToLower(f.Genre)
	for _, m := range list {
		if f.Genre != "" && !hasGenreFold(m.Genres, genre) {
			continue
		}
		if f.Year != 0 && m.Year() != f.Year {
			continue
		}
		if f.MinRating != 0 && int(math.Floor(m.VoteAverage)) < f.MinRating {
			continue
		}
		out = append(out, m)
	}

	if f.SortBy != "" {
		sortMovies(out, f.SortBy, f.SortOrder)
	}
	return out
}

// match de género case-insensitive (a diferencia de las categorías, que
// usan el tag exacto)
func hasGenreFold(genres []string, lower string) bool {
	for _, g := range genres {
		if strings.ToLower(g) == lower {
			return true
		}
	}
	return false
}

func sortMovies(list []models.Movie, sortBy, order string) {
	desc := order == SortDesc

	var less func(a, b models.Movie) bool
	switch sortBy {
	case SortByTitle:
		c := collate.New(language.Und)
		less = func(a, b models.Movie) bool {
			return c.CompareString(a.Title, b.Title) < 0
		}
	case SortByReleaseDate:
		less = func(a, b models.Movie) bool {
			return releaseTime(a).Before(releaseTime(b))
		}
	case SortByVoteAverage:
		less = func(a, b models.Movie) bool {
			return a.VoteAverage < b.VoteAverage
		}
	default:
		return
	}

	sort.SliceStable(list, func(i, j int) bool {
		if desc {
			return less(list[j], list[i])
		}
		return less(list[i], list[j])
	})
}

func releaseTime(m models.Movie) time.Time {
	t, err := time.Parse("2006-01-02", m.ReleaseDate)
	if err != nil {
		return time.Time{}
	}
	return t
}
