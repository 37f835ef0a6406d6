package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/cache"
	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/catalog"
	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/cluster"
	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/models"
)

// AdminService orquesta el mantenimiento: flush del cache de
// recomendaciones, salud de los score nodes y resumen del catálogo.
type AdminService struct {
	catalog   *catalog.Store
	nodeAddrs []string
}

func NewAdminService(cat *catalog.Store, nodeAddrs []string) *AdminService {
	return &AdminService{catalog: cat, nodeAddrs: nodeAddrs}
}

// FlushRecommendationCache borra las keys cacheadas; userID <= 0 borra
// las de todos los usuarios.
func (s *AdminService) FlushRecommendationCache(ctx context.Context, userID int) (*models.CacheFlushResult, error) {
	pattern := "rec:user:*"
	if userID > 0 {
		pattern = fmt.Sprintf("rec:user:%d:*", userID)
	}

	deleted, err := cache.DeleteByPattern(ctx, pattern)
	if err != nil {
		return nil, err
	}
	return &models.CacheFlushResult{Pattern: pattern, Deleted: deleted}, nil
}

// NodeHealth hace ping a todos los score nodes en paralelo.
func (s *AdminService) NodeHealth(ctx context.Context) []models.NodeStatus {
	out := make([]models.NodeStatus, len(s.nodeAddrs))

	ctxTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var wg sync.WaitGroup
	for i, addr := range s.nodeAddrs {
		wg.Add(1)
		go func(i int, addr string) {
			defer wg.Done()
			st := models.NodeStatus{Addr: addr}
			pong, err := cluster.SendPing(ctxTimeout, addr)
			if err != nil {
				st.Error = err.Error()
			} else {
				st.OK = true
				st.NodeID = pong.NodeID
				st.Movies = pong.Movies
			}
			out[i] = st
		}(i, addr)
	}
	wg.Wait()

	return out
}

// CatalogSummary cuenta películas por género y tamaño de cada categoría.
func (s *AdminService) CatalogSummary() *models.CatalogSummary {
	sum := &models.CatalogSummary{
		ByGenre:    make(map[string]int),
		ByCategory: make(map[string]int),
	}

	for _, m := range s.catalog.All() {
		sum.TotalMovies++
		if m.IsPremium {
			sum.PremiumMovies++
		}
		for _, g := range m.Genres {
			sum.ByGenre[g]++
		}
	}

	for _, c := range []string{
		catalog.CategoryTrending, catalog.CategoryTopRated,
		catalog.CategoryAction, catalog.CategoryComedy, catalog.CategoryDrama,
		catalog.CategoryHorror, catalog.CategorySciFi, catalog.CategoryPremium,
	} {
		sum.ByCategory[c] = len(s.catalog.ByCategory(c))
	}

	return sum
}
