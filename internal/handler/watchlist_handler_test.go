package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/catalog"
	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/event"
	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/models"
	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/service"
)

// store de watchlists en memoria para los tests HTTP
type memWatchlists struct {
	byOwner map[string]*models.WatchlistDoc
}

func (s *memWatchlists) Get(_ context.Context, owner string) (*models.WatchlistDoc, error) {
	w, ok := s.byOwner[owner]
	if !ok {
		return nil, nil
	}
	cp := *w
	cp.MovieIDs = append([]int(nil), w.MovieIDs...)
	return &cp, nil
}

func (s *memWatchlists) Put(_ context.Context, w *models.WatchlistDoc) error {
	cp := *w
	cp.MovieIDs = append([]int(nil), w.MovieIDs...)
	s.byOwner[w.Owner] = &cp
	return nil
}

func newWatchlistRouter(t *testing.T) chi.Router {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	svc := service.NewWatchlistService(&memWatchlists{byOwner: map[string]*models.WatchlistDoc{}}, cat, event.NewBus())
	h := NewWatchlistHandler(svc)

	r := chi.NewRouter()
	r.Use(OptionalJWTAuth(testSecret))
	r.Route("/watchlist", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/count", h.Count)
		r.Post("/{id}", h.Add)
		r.Delete("/{id}", h.Remove)
		r.Post("/{id}/toggle", h.Toggle)
	})
	return r
}

func doSession(t *testing.T, r chi.Router, method, url, sid string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, url, nil)
	if sid != "" {
		req.Header.Set("X-Session-ID", sid)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestWatchlistRequiresOwner(t *testing.T) {
	r := newWatchlistRouter(t)

	rec := doSession(t, r, http.MethodGet, "/watchlist/", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWatchlistSessionFlow(t *testing.T) {
	r := newWatchlistRouter(t)
	const sid = "anon-1"

	rec := doSession(t, r, http.MethodPost, "/watchlist/5", sid)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doSession(t, r, http.MethodPost, "/watchlist/999", sid)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doSession(t, r, http.MethodGet, "/watchlist/count", sid)
	require.Equal(t, http.StatusOK, rec.Code)
	var count map[string]int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &count))
	assert.Equal(t, 1, count["count"])

	// otra sesión no ve la lista
	rec = doSession(t, r, http.MethodGet, "/watchlist/count", "anon-2")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &count))
	assert.Equal(t, 0, count["count"])

	rec = doSession(t, r, http.MethodPost, "/watchlist/5/toggle", sid)
	require.Equal(t, http.StatusOK, rec.Code)
	var toggle map[string]bool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &toggle))
	assert.False(t, toggle["inWatchlist"])

	rec = doSession(t, r, http.MethodGet, "/watchlist/", sid)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}
