// internal/catalog/catalog.go
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/models"
)

//go:embed data/catalog.json
var seedFS embed.FS

// Categorías expuestas por la API.
const (
	CategoryTrending = "trending"
	CategoryTopRated = "topRated"
	CategoryAction   = "action"
	CategoryComedy   = "comedy"
	CategoryDrama    = "drama"
	CategoryHorror   = "horror"
	CategorySciFi    = "sciFi"
	CategoryPremium  = "premium"
	CategoryDefault  = "default"
)

// tag de género por categoría (match exacto, case-sensitive)
var genreByCategory = map[string]string{
	CategoryAction: "Action",
	CategoryComedy: "Comedy",
	CategoryDrama:  "Drama",
	CategoryHorror: "Horror",
	CategorySciFi:  "Sci-Fi",
}

const (
	categoryLimit = 5
	similarLimit  = 4
)

// Store es el catálogo en memoria: singleton de solo lectura durante la
// vida del proceso. La muestra de trending se sortea una sola vez al
// cargar y queda fija hasta el próximo arranque.
type Store struct {
	movies   []models.Movie
	byID     map[int]int // movieId -> índice en movies
	trending []models.Movie
}

// New arma el store a partir de una lista ya decodificada.
func New(movies []models.Movie) *Store {
	s := &Store{
		movies: movies,
		byID:   make(map[int]int, len(movies)),
	}
	for i, m := range movies {
		s.byID[m.ID] = i
	}
	s.trending = s.sampleTrending(rand.New(rand.NewSource(time.Now().UnixNano())))
	return s
}

// Load decodifica el catálogo embebido en el binario.
func Load() (*Store, error) {
	raw, err := seedFS.ReadFile("data/catalog.json")
	if err != nil {
		return nil, fmt.Errorf("catalog: leyendo seed embebido: %w", err)
	}
	return decode(raw)
}

// LoadFile permite reemplazar el catálogo embebido por un JSON externo.
func LoadFile(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: leyendo %s: %w", path, err)
	}
	return decode(raw)
}

func decode(raw []byte) (*Store, error) {
	var movies []models.Movie
	if err := json.Unmarshal(raw, &movies); err != nil {
		return nil, fmt.Errorf("catalog: JSON inválido: %w", err)
	}
	if len(movies) == 0 {
		return nil, fmt.Errorf("catalog: catálogo vacío")
	}
	return New(movies), nil
}

func (s *Store) sampleTrending(rng *rand.Rand) []models.Movie {
	n := categoryLimit
	if n > len(s.movies) {
		n = len(s.movies)
	}
	idx := rng.Perm(len(s.movies))[:n]
	out := make([]models.Movie, 0, n)
	for _, i := range idx {
		out = append(out, s.movies[i])
	}
	return out
}

// Len devuelve el tamaño del catálogo.
func (s *Store) Len() int { return len(s.movies) }

// All devuelve todas las películas en orden de catálogo. El slice es
// compartido: los callers no deben mutarlo.
func (s *Store) All() []models.Movie { return s.movies }

// ByID busca por id exacto.
func (s *Store) ByID(id int) (models.Movie, bool) {
	i, ok := s.byID[id]
	if !ok {
		return models.Movie{}, false
	}
	return s.movies[i], true
}

// ByCategory devuelve la vista de una categoría. Una categoría
// desconocida (o "default") devuelve el catálogo completo.
func (s *Store) ByCategory(category string) []models.Movie {
	switch category {
	case CategoryTrending:
		return s.trending
	case CategoryTopRated:
		return s.topRated()
	case CategoryPremium:
		var out []models.Movie
		for _, m := range s.movies {
			if m.IsPremium {
				out = append(out, m)
			}
		}
		return out
	}
	if genre, ok := genreByCategory[category]; ok {
		var out []models.Movie
		for _, m := range s.movies {
			if m.HasGenre(genre) {
				out = append(out, m)
				if len(out) == categoryLimit {
					break
				}
			}
		}
		return out
	}
	return s.movies
}

// topRated: 5 mejores por voteAverage, empates en orden de catálogo.
func (s *Store) topRated() []models.Movie {
	out := make([]models.Movie, len(s.movies))
	copy(out, s.movies)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].VoteAverage > out[j].VoteAverage
	})
	if len(out) > categoryLimit {
		out = out[:categoryLimit]
	}
	return out
}

// Search hace substring case-insensitive sobre título, overview o
// cualquier género. El query se matchea tal cual (sin trim); la
// convención de "query mínimo 3 caracteres" es del caller, no de esta
// función.
func (s *Store) Search(query string) []models.Movie {
	q := strings.ToLower(query)
	if q == "" {
		return nil
	}
	var out []models.Movie
	for _, m := range s.movies {
		if strings.Contains(strings.ToLower(m.Title), q) ||
			strings.Contains(strings.ToLower(m.Overview), q) ||
			anyGenreContains(m.Genres, q) {
			out = append(out, m)
		}
	}
	return out
}

func anyGenreContains(genres []string, q string) bool {
	for _, g := range genres {
		if strings.Contains(strings.ToLower(g), q) {
			return true
		}
	}
	return false
}

// Similar devuelve hasta 4 películas que comparten al menos un género con
// la fuente, excluyéndola, ordenadas por (géneros compartidos desc,
// rating desc) y estables por orden de catálogo.
func (s *Store) Similar(id int) []models.Movie {
	src, ok := s.ByID(id)
	if !ok {
		return nil
	}
	srcGenres := make(map[string]bool, len(src.Genres))
	for _, g := range src.Genres {
		srcGenres[g] = true
	}

	type cand struct {
		movie  models.Movie
		shared int
	}
	var cands []cand
	for _, m := range s.movies {
		if m.ID == id {
			continue
		}
		shared := 0
		for _, g := range m.Genres {
			if srcGenres[g] {
				shared++
			}
		}
		if shared > 0 {
			cands = append(cands, cand{movie: m, shared: shared})
		}
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].shared != cands[j].shared {
			return cands[i].shared > cands[j].shared
		}
		return cands[i].movie.VoteAverage > cands[j].movie.VoteAverage
	})

	n := similarLimit
	if n > len(cands) {
		n = len(cands)
	}
	out := make([]models.Movie, 0, n)
	for _, c := range cands[:n] {
		out = append(out, c.movie)
	}
	return out
}
