package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/cache"
	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/db"
)

// @Summary Healthcheck con estado de dependencias
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	_ = json.NewEncoder(w).Encode(map[string]any{
		"status": "ok",
		"mongo":  db.Ping(ctx) == nil,
		"redis":  cache.Ping(ctx) == nil,
	})
}
