// internal/recommend/score.go
//
// Motor de scoring personalizado: función pura sobre el catálogo y el
// perfil del usuario. El service (internal/service) arma el Profile y
// este paquete solo calcula; así se puede testear sin Mongo ni Redis y
// los score nodes reutilizan exactamente la misma lógica.
package recommend

import (
	"math"
	"sort"
	"time"

	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/models"
)

// Pesos del score (aditivos, constantes).
const (
	weightFavoriteGenre  = 1.5 // por género favorito presente en la película
	weightKnownDirector  = 3.0 // flat si el director ya fue visto
	maxCastBonus         = 2.0 // tope del solape de reparto
	weightRating         = 2.0 // (voteAverage/10) * 2
	weightWatchlistGenre = 0.5 // por género compartido con la watchlist
	recencyNearBonus     = 1.0 // estreno dentro de 2 años
	recencyMidBonus      = 0.5 // estreno dentro de 5 años
)

// Profile es todo lo que el scoring necesita saber del usuario. Los
// campos son slices para que viaje como JSON a los score nodes.
type Profile struct {
	FavoriteGenres   []string  `json:"favoriteGenres,omitempty"`
	WatchedIDs       []int     `json:"watchedIds,omitempty"` // compras + rentas, vencidas o no
	WatchedDirectors []string  `json:"watchedDirectors,omitempty"`
	WatchedCast      []string  `json:"watchedCast,omitempty"`
	WatchlistGenres  []string  `json:"watchlistGenres,omitempty"`
	Now              time.Time `json:"now"`
}

type profileIndex struct {
	favorites map[string]bool
	watched   map[int]bool
	directors map[string]bool
	cast      map[string]bool
	wlGenres  map[string]bool
	nowYear   int
}

func buildIndex(p Profile) profileIndex {
	idx := profileIndex{
		favorites: toSet(p.FavoriteGenres),
		directors: toSet(p.WatchedDirectors),
		cast:      toSet(p.WatchedCast),
		wlGenres:  toSet(p.WatchlistGenres),
		watched:   make(map[int]bool, len(p.WatchedIDs)),
		nowYear:   p.Now.Year(),
	}
	for _, id := range p.WatchedIDs {
		idx.watched[id] = true
	}
	return idx
}

func toSet(list []string) map[string]bool {
	s := make(map[string]bool, len(list))
	for _, v := range list {
		s[v] = true
	}
	return s
}

// Score calcula el score de una película contra el perfil, redondeado a
// dos decimales. No aplica la exclusión de vistas (eso es de Rank).
func Score(m models.Movie, p Profile) float64 {
	return score(m, buildIndex(p))
}

func score(m models.Movie, idx profileIndex) float64 {
	var s float64

	for _, g := range m.Genres {
		if idx.favorites[g] {
			s += weightFavoriteGenre
		}
		if idx.wlGenres[g] {
			s += weightWatchlistGenre
		}
	}

	if m.Director != "" && idx.directors[m.Director] {
		s += weightKnownDirector
	}

	castOverlap := 0.0
	for _, c := range m.Cast {
		if idx.cast[c.Name] {
			castOverlap++
		}
	}
	s += math.Min(maxCastBonus, castOverlap)

	s += m.VoteAverage / 10 * weightRating

	if year := m.Year(); year > 0 && idx.nowYear > 0 {
		switch age := idx.nowYear - year; {
		case age <= 2:
			s += recencyNearBonus
		case age <= 5:
			s += recencyMidBonus
		}
	}

	return math.Round(s*100) / 100
}

// Rank puntúa todo el catálogo contra el perfil, excluye lo ya comprado
// o rentado (con expiry vencido o no) y devuelve la lista ordenada por
// score descendente. Los empates quedan estables por orden de catálogo.
// k <= 0 significa sin truncar.
func Rank(movies []models.Movie, p Profile, k int) []models.ScoredMovie {
	idx := buildIndex(p)

	out := make([]models.ScoredMovie, 0, len(movies))
	for _, m := range movies {
		if idx.watched[m.ID] {
			continue
		}
		out = append(out, models.ScoredMovie{Movie: m, Score: score(m, idx)})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	if k > 0 && len(out) > k {
		out = out[:k]
	}
	return out
}

// RankShard puntúa solo el shard `shardID` (índices i con
// i % shards == shardID) del catálogo; es lo que corre cada score node.
// El coordinador concatena parciales y reordena con MergePartials.
func RankShard(movies []models.Movie, p Profile, shardID, shards int) []models.ScoredMovie {
	if shards <= 1 {
		return Rank(movies, p, 0)
	}
	idx := buildIndex(p)

	var out []models.ScoredMovie
	for i, m := range movies {
		if i%shards != shardID || idx.watched[m.ID] {
			continue
		}
		out = append(out, models.ScoredMovie{Movie: m, Score: score(m, idx)})
	}
	return out
}

// MergePartials combina parciales de varios shards en un ranking final.
// Reordena por score y desempata por id para que el resultado no dependa
// del orden de llegada de los nodos.
func MergePartials(partials [][]models.ScoredMovie, k int) []models.ScoredMovie {
	var all []models.ScoredMovie
	for _, p := range partials {
		all = append(all, p...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Score != all[j].Score {
			return all[i].Score > all[j].Score
		}
		return all[i].Movie.ID < all[j].Movie.ID
	})
	if k > 0 && len(all) > k {
		all = all[:k]
	}
	return all
}
