package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/models"
	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/service"

	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(s *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: s}
}

type userResponse struct {
	UserID         int                    `json:"userId"`
	Email          string                 `json:"email"`
	Name           string                 `json:"name,omitempty"`
	Role           string                 `json:"role"`
	FavoriteGenres []string               `json:"favoriteGenres,omitempty"`
	MinRating      int                    `json:"minRating,omitempty"`
	YearFrom       int                    `json:"yearFrom,omitempty"`
	YearTo         int                    `json:"yearTo,omitempty"`
	Subscription   models.Subscription    `json:"subscription"`
	Purchases      []models.Purchase      `json:"purchases,omitempty"`
	Rentals        []models.Rental        `json:"rentals,omitempty"`
	PaymentMethods []models.PaymentMethod `json:"paymentMethods,omitempty"`
	CreatedAt      string                 `json:"createdAt"`
	UpdatedAt      string                 `json:"updatedAt"`
}

func toUserResponse(u *models.UserDoc) userResponse {
	return userResponse{
		UserID:         u.UserID,
		Email:          u.Email,
		Name:           u.Name,
		Role:           u.Role,
		FavoriteGenres: u.FavoriteGenres,
		MinRating:      u.MinRating,
		YearFrom:       u.YearFrom,
		YearTo:         u.YearTo,
		Subscription:   u.Subscription,
		Purchases:      u.Purchases,
		Rentals:        u.Rentals,
		PaymentMethods: u.PaymentMethods,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`

	FavoriteGenres []string `json:"favoriteGenres"`
}

// @Summary Register
// @Description Crea un usuario nuevo (free tier)
// @Tags auth
// @Accept json
// @Produce json
// @Param body body registerRequest true "datos"
// @Success 201 {object} userResponse
// @Failure 400 {string} string "body inválido"
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	u, err := h.svc.Register(r.Context(), service.RegisterUserData{
		Email:          req.Email,
		Password:       req.Password,
		Name:           req.Name,
		Role:           req.Role,
		FavoriteGenres: req.FavoriteGenres,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(toUserResponse(u))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param body body loginRequest true "credenciales"
// @Success 200 {object} map[string]any
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	token, u, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"token": token,
		"user":  toUserResponse(u),
	})
}

type updateUserRequest struct {
	Email    *string `json:"email"`
	Role     *string `json:"role"`
	Password *string `json:"password"`
	Name     *string `json:"name"`
}

// @Summary Actualizar usuario (admin)
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Param id path int true "userId"
// @Param body body updateUserRequest true "campos a actualizar"
// @Success 204
// @Router /users/{id}/update [put]
func (h *AuthHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID, _ := strconv.Atoi(chi.URLParam(r, "id"))

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := h.svc.UpdateUser(r.Context(), userID, service.UpdateUserData{
		Email:    req.Email,
		Role:     req.Role,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		if err == service.ErrUserNotFound {
			http.NotFound(w, r)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Listar usuarios (admin)
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Param role query string false "user|admin"
// @Param q query string false "búsqueda por email o nombre"
// @Success 200 {array} userResponse
// @Router /users [get]
func (h *AuthHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	role := r.URL.Query().Get("role")
	q := r.URL.Query().Get("q")

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 50
	}

	users, err := h.svc.ListUsers(r.Context(), role, q, limit, offset)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	out := make([]userResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	_ = json.NewEncoder(w).Encode(out)
}

// @Summary Obtener usuario por id (admin)
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Param id path int true "userId"
// @Success 200 {object} userResponse
// @Router /users/{id} [get]
func (h *AuthHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID, _ := strconv.Atoi(chi.URLParam(r, "id"))

	u, err := h.svc.GetUserByID(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if u == nil {
		http.NotFound(w, r)
		return
	}
	_ = json.NewEncoder(w).Encode(toUserResponse(u))
}
