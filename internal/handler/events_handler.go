package handler

import (
	"log"
	"net/http"
	"strings"

	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/event"
)

// EventsHandler expone el bus de cambios por WebSocket para que los
// clientes puedan refrescar su estado (perfil, watchlist, reseñas) sin polling.
type EventsHandler struct {
	bus *event.Bus
}

func NewEventsHandler(b *event.Bus) *EventsHandler {
	return &EventsHandler{bus: b}
}

// @Summary Feed de cambios en tiempo real (WebSocket)
// @Tags events
// @Produce json
// @Param topics query string false "topics separados por coma (account,watchlist,reviews); vacío = todos"
// @Success 200 {object} map[string]interface{}
// @Router /ws/events [get]
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "No se pudo abrir WebSocket", 400)
		return
	}
	defer conn.Close()

	var topics []event.Topic
	if raw := r.URL.Query().Get("topics"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				topics = append(topics, event.Topic(t))
			}
		}
	}

	ch, cancel := h.bus.Subscribe(topics...)
	defer cancel()

	// Si el cliente cierra la conexión, ReadMessage falla y soltamos al writer.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	conn.WriteJSON(map[string]any{"type": "subscribed"})

	for {
		select {
		case ev := <-ch:
			if err := conn.WriteJSON(map[string]any{
				"type":  "change",
				"topic": ev.Topic,
				"at":    ev.At,
			}); err != nil {
				log.Printf("[EVENTS WS] cerrando: %v", err)
				return
			}
		case <-done:
			return
		case <-r.Context().Done():
			return
		}
	}
}
