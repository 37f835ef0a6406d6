package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/models"
	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/service"

	"github.com/go-chi/chi/v5"
)

type ReviewHandler struct {
	svc *service.ReviewService
}

func NewReviewHandler(s *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: s}
}

// @Summary Reseñas de una película (más recientes primero)
// @Tags reviews
// @Produce json
// @Param id path int true "movieId"
// @Success 200 {array} models.Review
// @Router /movies/{id}/reviews [get]
func (h *ReviewHandler) ListByMovie(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	movieID, _ := strconv.Atoi(chi.URLParam(r, "id"))

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	reviews, err := h.svc.ListByMovie(r.Context(), movieID, limit, offset)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	_ = json.NewEncoder(w).Encode(reviews)
}

type reviewRequest struct {
	Author  string `json:"author"`
	Rating  int    `json:"rating"` // estrellas 1..5, obligatorio
	Comment string `json:"comment"`
}

// @Summary Publicar reseña
// @Tags reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "movieId"
// @Param body body reviewRequest true "reseña"
// @Success 201 {object} models.Review
// @Failure 400 {string} string "rating fuera de rango o comentario muy largo"
// @Router /me/movies/{id}/reviews [post]
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := UserIDFromContext(r.Context())
	movieID, _ := strconv.Atoi(chi.URLParam(r, "id"))

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rev, err := h.svc.AddReview(r.Context(), userID, req.Author, movieID, req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMovieNotFound):
			http.NotFound(w, r)
		case errors.Is(err, service.ErrInvalidRating), errors.Is(err, service.ErrCommentTooLong):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(rev)
}

// @Summary Borrar reseña propia
// @Tags reviews
// @Security BearerAuth
// @Param reviewId path string true "reviewId"
// @Success 204
// @Failure 403 {string} string "la reseña es de otro usuario"
// @Router /me/reviews/{reviewId} [delete]
func (h *ReviewHandler) DeleteOwn(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())
	reviewID := chi.URLParam(r, "reviewId")

	err := h.svc.DeleteOwn(r.Context(), userID, reviewID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReviewNotFound):
			http.NotFound(w, r)
		case errors.Is(err, service.ErrNotReviewAuthor):
			http.Error(w, err.Error(), http.StatusForbidden)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type rateRequest struct {
	Rating float64 `json:"rating"` // 0..10
}

// @Summary Valoración personal de una película
// @Tags reviews
// @Security BearerAuth
// @Accept json
// @Param id path int true "movieId"
// @Param body body rateRequest true "rating"
// @Success 204
// @Router /me/movies/{id}/rating [put]
func (h *ReviewHandler) Rate(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())
	movieID, _ := strconv.Atoi(chi.URLParam(r, "id"))

	var req rateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.RateMovie(r.Context(), userID, movieID, req.Rating); err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Mi valoración de una película
// @Tags reviews
// @Security BearerAuth
// @Produce json
// @Param id path int true "movieId"
// @Success 200 {object} models.RatingDoc
// @Router /me/movies/{id}/rating [get]
func (h *ReviewHandler) GetMyRating(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := UserIDFromContext(r.Context())
	movieID, _ := strconv.Atoi(chi.URLParam(r, "id"))

	rd, err := h.svc.GetMyRating(r.Context(), userID, movieID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if rd == nil {
		http.NotFound(w, r)
		return
	}
	_ = json.NewEncoder(w).Encode(rd)
}
