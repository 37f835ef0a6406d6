package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/service"

	"github.com/go-chi/chi/v5"
)

type WatchlistHandler struct {
	svc *service.WatchlistService
}

func NewWatchlistHandler(s *service.WatchlistService) *WatchlistHandler {
	return &WatchlistHandler{svc: s}
}

// requireOwner corta con 400 si no hay ni usuario ni sesión anónima.
func requireOwner(w http.ResponseWriter, r *http.Request) (string, bool) {
	owner := ownerFromRequest(r)
	if owner == "" {
		http.Error(w, "se requiere Authorization o X-Session-ID", http.StatusBadRequest)
		return "", false
	}
	return owner, true
}

// @Summary Listar watchlist
// @Tags watchlist
// @Produce json
// @Success 200 {array} models.Movie
// @Router /watchlist [get]
func (h *WatchlistHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	owner, ok := requireOwner(w, r)
	if !ok {
		return
	}

	movies, err := h.svc.List(r.Context(), owner)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeMovieList(w, movies)
}

// @Summary Conteo de la watchlist
// @Tags watchlist
// @Produce json
// @Success 200 {object} map[string]int
// @Router /watchlist/count [get]
func (h *WatchlistHandler) Count(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	owner, ok := requireOwner(w, r)
	if !ok {
		return
	}

	count, err := h.svc.Count(r.Context(), owner)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]int{"count": count})
}

// @Summary Agregar película a la watchlist (no-op si ya estaba)
// @Tags watchlist
// @Param id path int true "movieId"
// @Success 204
// @Router /watchlist/{id} [post]
func (h *WatchlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	owner, ok := requireOwner(w, r)
	if !ok {
		return
	}
	movieID, _ := strconv.Atoi(chi.URLParam(r, "id"))

	if err := h.svc.Add(r.Context(), owner, movieID); err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Quitar película de la watchlist (no-op si no estaba)
// @Tags watchlist
// @Param id path int true "movieId"
// @Success 204
// @Router /watchlist/{id} [delete]
func (h *WatchlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	owner, ok := requireOwner(w, r)
	if !ok {
		return
	}
	movieID, _ := strconv.Atoi(chi.URLParam(r, "id"))

	if err := h.svc.Remove(r.Context(), owner, movieID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Toggle de membresía; devuelve si quedó en la lista
// @Tags watchlist
// @Produce json
// @Param id path int true "movieId"
// @Success 200 {object} map[string]bool
// @Router /watchlist/{id}/toggle [post]
func (h *WatchlistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	owner, ok := requireOwner(w, r)
	if !ok {
		return
	}
	movieID, _ := strconv.Atoi(chi.URLParam(r, "id"))

	inList, err := h.svc.Toggle(r.Context(), owner, movieID)
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"inWatchlist": inList})
}
