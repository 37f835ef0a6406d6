package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/catalog"
	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/models"
	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/service"
)

func newMovieRouter(t *testing.T) chi.Router {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	h := NewMovieHandler(service.NewCatalogService(cat))

	r := chi.NewRouter()
	r.Get("/movies/search", h.Search)
	r.Get("/movies/category/{name}", h.Category)
	r.Get("/movies/{id}", h.GetMovie)
	r.Get("/movies/{id}/similar", h.Similar)
	return r
}

func doGet(t *testing.T, r chi.Router, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeMovies(t *testing.T, rec *httptest.ResponseRecorder) []models.Movie {
	t.Helper()
	var out []models.Movie
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestGetMovie(t *testing.T) {
	r := newMovieRouter(t)

	rec := doGet(t, r, "/movies/2")
	require.Equal(t, http.StatusOK, rec.Code)
	var m models.Movie
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	assert.Equal(t, "The Dark Knight", m.Title)

	rec = doGet(t, r, "/movies/999")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchEndpoint(t *testing.T) {
	r := newMovieRouter(t)

	rec := doGet(t, r, "/movies/search?q=batman")
	require.Equal(t, http.StatusOK, rec.Code)
	movies := decodeMovies(t, rec)
	assert.NotEmpty(t, movies)

	// menos de 3 caracteres devuelve lista vacía, no null
	rec = doGet(t, r, "/movies/search?q=ba")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestCategoryEndpointWithFilters(t *testing.T) {
	r := newMovieRouter(t)

	rec := doGet(t, r, "/movies/category/topRated")
	require.Equal(t, http.StatusOK, rec.Code)
	movies := decodeMovies(t, rec)
	require.Len(t, movies, 5)
	assert.Equal(t, 2, movies[0].ID)

	// categoría completa filtrada y ordenada
	rec = doGet(t, r, "/movies/category/default?genre=horror&min_rating=8&sort_by=voteAverage&sort_order=desc")
	require.Equal(t, http.StatusOK, rec.Code)
	movies = decodeMovies(t, rec)
	require.Len(t, movies, 2)
	for _, m := range movies {
		assert.True(t, m.HasGenre("Horror"))
	}
}

func TestSimilarEndpoint(t *testing.T) {
	r := newMovieRouter(t)

	rec := doGet(t, r, "/movies/1/similar")
	require.Equal(t, http.StatusOK, rec.Code)
	movies := decodeMovies(t, rec)
	assert.Len(t, movies, 4)

	rec = doGet(t, r, "/movies/999/similar")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}
