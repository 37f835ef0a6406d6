package service

import (
	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/catalog"
	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/models"
)

// CatalogService expone el catálogo de solo lectura más el pipeline de
// filtros de categoría.
type CatalogService struct {
	catalog *catalog.Store
}

func NewCatalogService(cat *catalog.Store) *CatalogService {
	return &CatalogService{catalog: cat}
}

func (s *CatalogService) GetMovie(id int) (models.Movie, bool) {
	return s.catalog.ByID(id)
}

// Category devuelve la vista de la categoría con los filtros aplicados.
func (s *CatalogService) Category(name string, f catalog.Filters) []models.Movie {
	return catalog.ApplyFilters(s.catalog.ByCategory(name), f)
}

func (s *CatalogService) Search(query string) []models.Movie {
	return s.catalog.Search(query)
}

func (s *CatalogService) Similar(id int) []models.Movie {
	return s.catalog.Similar(id)
}
