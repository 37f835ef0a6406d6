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

type AccountHandler struct {
	svc *service.AccountService
}

func NewAccountHandler(s *service.AccountService) *AccountHandler {
	return &AccountHandler{svc: s}
}

func (h *AccountHandler) writeAccountErr(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrMovieNotFound):
		http.NotFound(w, r)
	case errors.Is(err, service.ErrInvalidTier):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// @Summary Perfil del usuario autenticado
// @Tags account
// @Security BearerAuth
// @Produce json
// @Success 200 {object} userResponse
// @Router /me [get]
func (h *AccountHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := UserIDFromContext(r.Context())

	u, err := h.svc.GetUser(r.Context(), userID)
	if err != nil {
		h.writeAccountErr(w, r, err)
		return
	}
	_ = json.NewEncoder(w).Encode(toUserResponse(u))
}

type upgradeRequest struct {
	Tier string `json:"tier"` // free|basic|premium
}

// @Summary Cambiar tier de suscripción
// @Tags account
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body upgradeRequest true "tier"
// @Success 200 {object} userResponse
// @Router /me/subscription/upgrade [post]
func (h *AccountHandler) Upgrade(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := UserIDFromContext(r.Context())

	var req upgradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	u, err := h.svc.Upgrade(r.Context(), userID, req.Tier)
	if err != nil {
		h.writeAccountErr(w, r, err)
		return
	}
	_ = json.NewEncoder(w).Encode(toUserResponse(u))
}

type purchaseRequest struct {
	Price float64 `json:"price"`
}

// @Summary Comprar película
// @Tags account
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "movieId"
// @Param body body purchaseRequest false "precio (default: precio de catálogo)"
// @Success 200 {object} userResponse
// @Router /me/movies/{id}/purchase [post]
func (h *AccountHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := UserIDFromContext(r.Context())
	movieID, _ := strconv.Atoi(chi.URLParam(r, "id"))

	var req purchaseRequest
	_ = json.NewDecoder(r.Body).Decode(&req) // body opcional

	u, err := h.svc.Purchase(r.Context(), userID, movieID, req.Price)
	if err != nil {
		h.writeAccountErr(w, r, err)
		return
	}
	_ = json.NewEncoder(w).Encode(toUserResponse(u))
}

type rentRequest struct {
	Price         float64 `json:"price"`
	DurationHours int     `json:"durationHours"` // default 48
}

// @Summary Rentar película
// @Tags account
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "movieId"
// @Param body body rentRequest false "precio y duración"
// @Success 200 {object} userResponse
// @Router /me/movies/{id}/rent [post]
func (h *AccountHandler) Rent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := UserIDFromContext(r.Context())
	movieID, _ := strconv.Atoi(chi.URLParam(r, "id"))

	var req rentRequest
	_ = json.NewDecoder(r.Body).Decode(&req) // body opcional

	u, err := h.svc.Rent(r.Context(), userID, movieID, req.Price, req.DurationHours)
	if err != nil {
		h.writeAccountErr(w, r, err)
		return
	}
	_ = json.NewEncoder(w).Encode(toUserResponse(u))
}

// @Summary ¿Puede el usuario ver esta película?
// @Tags account
// @Security BearerAuth
// @Produce json
// @Param id path int true "movieId"
// @Success 200 {object} map[string]bool
// @Router /me/movies/{id}/access [get]
func (h *AccountHandler) CanAccess(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := UserIDFromContext(r.Context())
	movieID, _ := strconv.Atoi(chi.URLParam(r, "id"))

	canAccess, err := h.svc.CanAccessMovie(r.Context(), userID, movieID)
	if err != nil {
		h.writeAccountErr(w, r, err)
		return
	}
	purchased, err := h.svc.IsMoviePurchased(r.Context(), userID, movieID)
	if err != nil {
		h.writeAccountErr(w, r, err)
		return
	}
	rented, err := h.svc.IsMovieRented(r.Context(), userID, movieID)
	if err != nil {
		h.writeAccountErr(w, r, err)
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]bool{
		"canAccess": canAccess,
		"purchased": purchased,
		"rented":    rented,
	})
}

type preferencesRequest struct {
	FavoriteGenres *[]string `json:"favoriteGenres"`
	MinRating      *int      `json:"minRating"`
	YearFrom       *int      `json:"yearFrom"`
	YearTo         *int      `json:"yearTo"`
}

// @Summary Actualizar preferencias de descubrimiento
// @Tags account
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body preferencesRequest true "preferencias"
// @Success 200 {object} userResponse
// @Router /me/preferences [put]
func (h *AccountHandler) SetPreferences(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := UserIDFromContext(r.Context())

	var req preferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	u, err := h.svc.SetPreferences(r.Context(), userID, service.PreferencesData{
		FavoriteGenres: req.FavoriteGenres,
		MinRating:      req.MinRating,
		YearFrom:       req.YearFrom,
		YearTo:         req.YearTo,
	})
	if err != nil {
		h.writeAccountErr(w, r, err)
		return
	}
	_ = json.NewEncoder(w).Encode(toUserResponse(u))
}

// @Summary Agregar método de pago
// @Tags account
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.PaymentMethod true "método"
// @Success 200 {object} userResponse
// @Router /me/payment-methods [post]
func (h *AccountHandler) AddPaymentMethod(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := UserIDFromContext(r.Context())

	var pm models.PaymentMethod
	if err := json.NewDecoder(r.Body).Decode(&pm); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	u, err := h.svc.AddPaymentMethod(r.Context(), userID, pm)
	if err != nil {
		h.writeAccountErr(w, r, err)
		return
	}
	_ = json.NewEncoder(w).Encode(toUserResponse(u))
}

// @Summary Marcar método de pago como default
// @Tags account
// @Security BearerAuth
// @Produce json
// @Param id path string true "paymentMethodId"
// @Success 200 {object} userResponse
// @Router /me/payment-methods/{id}/default [put]
func (h *AccountHandler) SetDefaultPaymentMethod(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := UserIDFromContext(r.Context())
	methodID := chi.URLParam(r, "id")

	u, err := h.svc.SetDefaultPaymentMethod(r.Context(), userID, methodID)
	if err != nil {
		h.writeAccountErr(w, r, err)
		return
	}
	_ = json.NewEncoder(w).Encode(toUserResponse(u))
}
