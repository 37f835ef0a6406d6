package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/cache"
	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/catalog"
	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/cluster"
	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/models"
	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/recommend"

	"github.com/google/uuid"
)

const (
	DefaultK = 10
	MaxK     = 50 // por seguridad, no deja pedir el catálogo entero mil veces
)

// RecommendationStore guarda el historial de corridas (best effort).
type RecommendationStore interface {
	Insert(ctx context.Context, rec *models.Recommendation) error
}

// RecommendService arma el perfil del usuario (preferencias + historial
// + watchlist) y corre el motor de scoring, localmente o repartido entre
// score nodes.
type RecommendService struct {
	users      UserStore
	watchlists WatchlistStore
	recRepo    RecommendationStore // nil = sin historial
	catalog    *catalog.Store
	// direcciones TCP de los score nodes; vacío = scoring local
	nodeAddrs []string

	now func() time.Time
}

func NewRecommendService(
	users UserStore,
	watchlists WatchlistStore,
	recRepo RecommendationStore,
	cat *catalog.Store,
	nodeAddrs []string,
) *RecommendService {
	return &RecommendService{
		users:      users,
		watchlists: watchlists,
		recRepo:    recRepo,
		catalog:    cat,
		nodeAddrs:  nodeAddrs,
		now:        time.Now,
	}
}

// ====== Petición de recomendaciones ======

type RecRequest struct {
	UserID  int
	K       int
	Refresh bool
}

func cacheKey(req RecRequest) string {
	// Cachea por usuario + k (refresh solo decide si usar el cache)
	return fmt.Sprintf("rec:user:%d:k:%d", req.UserID, req.K)
}

// Recommend puntúa el catálogo contra el perfil del usuario. Un usuario
// que no se puede resolver devuelve lista vacía, nunca error.
func (s *RecommendService) Recommend(ctx context.Context, req RecRequest) ([]models.ScoredMovie, error) {
	// defaults y límites para K
	if req.K <= 0 {
		req.K = DefaultK
	} else if req.K > MaxK {
		req.K = MaxK
	}

	// 1) Cache Redis (solo si refresh = false)
	var cached []models.ScoredMovie
	if !req.Refresh {
		if ok, err := cache.GetJSON(ctx, cacheKey(req), &cached); err == nil && ok {
			return cached, nil
		}
	}

	// 2) Perfil del usuario
	u, err := s.users.FindByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return []models.ScoredMovie{}, nil
	}

	profile, err := s.buildProfile(ctx, u)
	if err != nil {
		return nil, err
	}

	// 3) Scoring: local o repartido entre score nodes
	var items []models.ScoredMovie
	if len(s.nodeAddrs) == 0 {
		items = recommend.Rank(s.catalog.All(), profile, req.K)
	} else {
		items, err = s.fanOut(ctx, profile, req.K)
		if err != nil {
			// si el cluster entero falló, calculamos local igual
			log.Printf("score nodes caídos, scoring local: %v", err)
			items = recommend.Rank(s.catalog.All(), profile, req.K)
		}
	}

	// 4) Historial en Mongo (no rompemos la respuesta si falla)
	if s.recRepo != nil {
		hist := &models.Recommendation{
			ID:     uuid.NewString(),
			UserID: req.UserID,
			Algo:   "profile-weights",
			Params: map[string]any{
				"k":       req.K,
				"shards":  len(s.nodeAddrs),
				"refresh": req.Refresh,
			},
			Items:     items,
			CreatedAt: s.now(),
		}
		if err := s.recRepo.Insert(ctx, hist); err != nil {
			log.Printf("error guardando recomendación en Mongo: %v", err)
		}
	}

	// 5) Cachear en Redis (1 hora)
	if err := cache.SetJSON(ctx, cacheKey(req), items, 60*60); err != nil {
		log.Printf("error cacheando recomendación en Redis: %v", err)
	}

	return items, nil
}

// buildProfile junta todo lo que el motor necesita: géneros favoritos,
// vistas (compras + rentas, vencidas o no), directores y reparto de lo
// visto, y los géneros de la watchlist.
func (s *RecommendService) buildProfile(ctx context.Context, u *models.UserDoc) (recommend.Profile, error) {
	p := recommend.Profile{
		FavoriteGenres: u.FavoriteGenres,
		WatchedIDs:     u.WatchedMovieIDs(),
		Now:            s.now(),
	}

	dirSeen := make(map[string]bool)
	castSeen := make(map[string]bool)
	for _, id := range p.WatchedIDs {
		m, ok := s.catalog.ByID(id)
		if !ok {
			continue
		}
		if m.Director != "" && !dirSeen[m.Director] {
			dirSeen[m.Director] = true
			p.WatchedDirectors = append(p.WatchedDirectors, m.Director)
		}
		for _, c := range m.Cast {
			if !castSeen[c.Name] {
				castSeen[c.Name] = true
				p.WatchedCast = append(p.WatchedCast, c.Name)
			}
		}
	}

	wl, err := s.watchlists.Get(ctx, OwnerForUser(u.UserID))
	if err != nil {
		return p, err
	}
	if wl != nil {
		genreSeen := make(map[string]bool)
		for _, id := range wl.MovieIDs {
			m, ok := s.catalog.ByID(id)
			if !ok {
				continue
			}
			for _, g := range m.Genres {
				if !genreSeen[g] {
					genreSeen[g] = true
					p.WatchlistGenres = append(p.WatchlistGenres, g)
				}
			}
		}
	}

	return p, nil
}

// fanOut reparte el scoring entre los score nodes (un shard por nodo) y
// mergea los parciales. Acepta resultados parciales si algún nodo cae;
// devuelve error solo si fallaron todos.
func (s *RecommendService) fanOut(ctx context.Context, profile recommend.Profile, k int) ([]models.ScoredMovie, error) {
	shards := len(s.nodeAddrs)

	ctxTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	resCh := make(chan *cluster.ScoreResponse, shards)
	errCh := make(chan error, shards)

	var wg sync.WaitGroup
	for i, addr := range s.nodeAddrs {
		wg.Add(1)
		go func(addr string, shardID int) {
			defer wg.Done()
			resp, err := cluster.SendTask(ctxTimeout, addr, &cluster.ScoreTask{
				Profile: profile,
				ShardID: shardID,
				Shards:  shards,
			})
			if err != nil {
				errCh <- err
				return
			}
			resCh <- resp
		}(addr, i)
	}

	wg.Wait()
	close(resCh)
	close(errCh)

	if len(resCh) == 0 {
		if err := <-errCh; err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("score nodes sin respuesta")
	}

	var partials [][]models.ScoredMovie
	for resp := range resCh {
		partials = append(partials, resp.Partials)
	}
	return recommend.MergePartials(partials, k), nil
}

// History devuelve las últimas corridas guardadas del usuario.
func (s *RecommendService) History(ctx context.Context, userID int, limit int64) ([]models.Recommendation, error) {
	type lister interface {
		FindByUser(ctx context.Context, userID int, limit int64) ([]models.Recommendation, error)
	}
	if l, ok := s.recRepo.(lister); ok {
		return l.FindByUser(ctx, userID, limit)
	}
	return nil, nil
}
