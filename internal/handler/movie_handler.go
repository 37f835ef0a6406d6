// internal/handler/movie_handler.go
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/catalog"
	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/models"
	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/service"

	"github.com/go-chi/chi/v5"
)

// la UI no dispara búsquedas con menos de 3 caracteres; el store en sí
// no impone mínimo
const minSearchLen = 3

type MovieHandler struct {
	svc *service.CatalogService
}

func NewMovieHandler(s *service.CatalogService) *MovieHandler { return &MovieHandler{svc: s} }

// @Summary Get movie
// @Tags movies
// @Produce json
// @Param id path int true "movieId"
// @Success 200 {object} models.Movie
// @Router /movies/{id} [get]
func (h *MovieHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	m, ok := h.svc.GetMovie(id)
	if !ok {
		http.NotFound(w, r)
		return
	}
	_ = json.NewEncoder(w).Encode(m)
}

// @Summary Películas de una categoría (con filtros y orden opcionales)
// @Tags movies
// @Produce json
// @Param name path string true "trending|topRated|action|comedy|drama|horror|sciFi|premium|default"
// @Param genre query string false "filtrar por género"
// @Param year query int false "año de estreno"
// @Param min_rating query int false "floor(voteAverage) mínimo"
// @Param sort_by query string false "title|releaseDate|voteAverage"
// @Param sort_order query string false "asc|desc (default asc)"
// @Success 200 {array} models.Movie
// @Router /movies/category/{name} [get]
func (h *MovieHandler) Category(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	name := chi.URLParam(r, "name")

	q := r.URL.Query()
	year, _ := strconv.Atoi(q.Get("year"))
	minRating, _ := strconv.Atoi(q.Get("min_rating"))

	f := catalog.Filters{
		Genre:     q.Get("genre"),
		Year:      year,
		MinRating: minRating,
		SortBy:    q.Get("sort_by"),
		SortOrder: q.Get("sort_order"),
	}

	movies := h.svc.Category(name, f)
	writeMovieList(w, movies)
}

// @Summary Buscar películas (título, overview o género)
// @Tags movies
// @Produce json
// @Param q query string true "texto a buscar (mínimo 3 caracteres)"
// @Success 200 {array} models.Movie
// @Router /movies/search [get]
func (h *MovieHandler) Search(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	// convención del caller: consultas cortas devuelven vacío
	if len(query) < minSearchLen {
		writeMovieList(w, nil)
		return
	}
	writeMovieList(w, h.svc.Search(query))
}

// @Summary Películas similares (comparten al menos un género)
// @Tags movies
// @Produce json
// @Param id path int true "movieId"
// @Success 200 {array} models.Movie
// @Router /movies/{id}/similar [get]
func (h *MovieHandler) Similar(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	writeMovieList(w, h.svc.Similar(id))
}

// lista vacía serializa como [], no como null
func writeMovieList(w http.ResponseWriter, movies []models.Movie) {
	if movies == nil {
		movies = []models.Movie{}
	}
	_ = json.NewEncoder(w).Encode(movies)
}
