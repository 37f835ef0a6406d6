package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/service"

	"github.com/go-chi/chi/v5"
)

// AdminHandler expone endpoints de mantenimiento y diagnóstico.
type AdminHandler struct {
	svc *service.AdminService
}

// NewAdminHandler crea el handler.
func NewAdminHandler(svc *service.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// @Summary Resumen del catálogo
// @Description Conteos de películas por género y por categoría.
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.CatalogSummary
// @Router /admin/catalog/summary [get]
func (h *AdminHandler) GetCatalogSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.CatalogSummary())
}

// @Summary Estado de los nodos de scoring
// @Description Hace ping en paralelo a todos los nodos configurados.
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.NodeStatus
// @Router /admin/nodes/health [get]
func (h *AdminHandler) GetNodeHealth(w http.ResponseWriter, r *http.Request) {
	statuses := h.svc.NodeHealth(r.Context())
	writeJSON(w, http.StatusOK, statuses)
}

// @Summary Invalidar cache de recomendaciones
// @Description Borra las entradas cacheadas en Redis; con userId borra solo las de ese usuario.
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param userId query int false "si se indica, invalida solo ese usuario"
// @Success 200 {object} models.CacheFlushResult
// @Failure 500 {string} string "error interno"
// @Router /admin/cache/recommendations/flush [post]
func (h *AdminHandler) PostFlushCache(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.Atoi(r.URL.Query().Get("userId"))

	res, err := h.svc.FlushRecommendationCache(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Utilidad pequeña para respuestas JSON.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Helper para montar rutas en main.go
func MountAdminRoutes(r chi.Router, h *AdminHandler) {
	r.Route("/admin", func(r chi.Router) {
		r.Get("/catalog/summary", h.GetCatalogSummary)
		r.Get("/nodes/health", h.GetNodeHealth)
		r.Post("/cache/recommendations/flush", h.PostFlushCache)
	})
}
