// internal/event/bus.go
//
// Bus de cambios tipado: los stores publican una señal sin payload y los
// observadores (el feed WebSocket, la UI) vuelven a consultar el estado
// derivado vía una nueva consulta.
package event

import (
	"sync"
	"time"
)

type Topic string

const (
	TopicAccount   Topic = "account"
	TopicWatchlist Topic = "watchlist"
	TopicReviews   Topic = "reviews"
)

// Event no lleva payload más allá del topic: el contrato es
// "notificar y que cada observador re-derive lo suyo".
type Event struct {
	Topic Topic     `json:"topic"`
	At    time.Time `json:"at"`
}

type subscriber struct {
	ch     chan Event
	topics map[Topic]bool // vacío = todos
}

// Bus es seguro para uso concurrente. Publish nunca bloquea: si el buffer
// de un suscriptor está lleno, ese evento se descarta para ese suscriptor
// (el observador re-consulta igual en el próximo evento que sí reciba).
type Bus struct {
	mu   sync.RWMutex
	subs map[int]*subscriber
	next int
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]*subscriber)}
}

// Subscribe registra un suscriptor para los topics dados (ninguno = todos)
// y devuelve el canal y la función de baja.
func (b *Bus) Subscribe(topics ...Topic) (<-chan Event, func()) {
	sub := &subscriber{
		ch:     make(chan Event, 16),
		topics: make(map[Topic]bool, len(topics)),
	}
	for _, t := range topics {
		sub.topics[t] = true
	}

	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = sub
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		if s, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(s.ch)
		}
		b.mu.Unlock()
	}
	return sub.ch, cancel
}

// Publish emite la señal de cambio del topic a todos los interesados.
func (b *Bus) Publish(topic Topic) {
	ev := Event{Topic: topic, At: time.Now()}

	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, sub := range b.subs {
		if len(sub.topics) > 0 && !sub.topics[topic] {
			continue
		}
		select {
		case sub.ch <- ev:
		default:
			// suscriptor lento: se descarta este evento
		}
	}
}
