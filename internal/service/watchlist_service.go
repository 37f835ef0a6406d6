package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/catalog"
	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/event"
	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/models"
)

// WatchlistStore abstrae el repositorio de watchlists.
type WatchlistStore interface {
	Get(ctx context.Context, owner string) (*models.WatchlistDoc, error)
	Put(ctx context.Context, w *models.WatchlistDoc) error
}

// OwnerForUser / OwnerForSession arman la key de dueño de la watchlist:
// sesión autenticada o sesión anónima.
func OwnerForUser(userID int) string          { return fmt.Sprintf("user:%d", userID) }
func OwnerForSession(sessionID string) string { return "session:" + sessionID }

// WatchlistService mantiene el set de películas marcadas por owner. Las
// mutaciones efectivas emiten la señal de cambio sin payload: los
// observadores re-consultan los derivados (conteo, listado).
type WatchlistService struct {
	store   WatchlistStore
	catalog *catalog.Store
	bus     *event.Bus
	now     func() time.Time
}

func NewWatchlistService(store WatchlistStore, cat *catalog.Store, bus *event.Bus) *WatchlistService {
	return &WatchlistService{store: store, catalog: cat, bus: bus, now: time.Now}
}

// get devuelve la watchlist del owner, vacía si todavía no existe.
func (s *WatchlistService) get(ctx context.Context, owner string) (*models.WatchlistDoc, error) {
	w, err := s.store.Get(ctx, owner)
	if err != nil {
		return nil, err
	}
	if w == nil {
		w = &models.WatchlistDoc{Owner: owner}
	}
	return w, nil
}

func (s *WatchlistService) persist(ctx context.Context, w *models.WatchlistDoc) error {
	w.UpdatedAt = s.now()
	if err := s.store.Put(ctx, w); err != nil {
		return err
	}
	s.bus.Publish(event.TopicWatchlist)
	return nil
}

func (s *WatchlistService) Has(ctx context.Context, owner string, movieID int) (bool, error) {
	w, err := s.get(ctx, owner)
	if err != nil {
		return false, err
	}
	return w.Has(movieID), nil
}

func (s *WatchlistService) Count(ctx context.Context, owner string) (int, error) {
	w, err := s.get(ctx, owner)
	if err != nil {
		return 0, err
	}
	return len(w.MovieIDs), nil
}

// Add agrega el id; si ya estaba es un no-op (y no emite señal).
func (s *WatchlistService) Add(ctx context.Context, owner string, movieID int) error {
	if _, ok := s.catalog.ByID(movieID); !ok {
		return ErrMovieNotFound
	}

	w, err := s.get(ctx, owner)
	if err != nil {
		return err
	}
	if w.Has(movieID) {
		return nil
	}
	w.MovieIDs = append(w.MovieIDs, movieID)
	return s.persist(ctx, w)
}

// Remove saca el id; si no estaba es un no-op.
func (s *WatchlistService) Remove(ctx context.Context, owner string, movieID int) error {
	w, err := s.get(ctx, owner)
	if err != nil {
		return err
	}
	if !w.Has(movieID) {
		return nil
	}

	out := w.MovieIDs[:0]
	for _, id := range w.MovieIDs {
		if id != movieID {
			out = append(out, id)
		}
	}
	w.MovieIDs = out
	return s.persist(ctx, w)
}

// Toggle invierte la membresía y devuelve true si el efecto neto es
// "ahora está en la lista".
func (s *WatchlistService) Toggle(ctx context.Context, owner string, movieID int) (bool, error) {
	w, err := s.get(ctx, owner)
	if err != nil {
		return false, err
	}
	if w.Has(movieID) {
		if err := s.Remove(ctx, owner, movieID); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := s.Add(ctx, owner, movieID); err != nil {
		return false, err
	}
	return true, nil
}

// List resuelve los ids contra el catálogo, en orden de inserción. Ids
// que ya no existen en el catálogo se omiten sin error.
func (s *WatchlistService) List(ctx context.Context, owner string) ([]models.Movie, error) {
	w, err := s.get(ctx, owner)
	if err != nil {
		return nil, err
	}

	out := make([]models.Movie, 0, len(w.MovieIDs))
	for _, id := range w.MovieIDs {
		if m, ok := s.catalog.ByID(id); ok {
			out = append(out, m)
		}
	}
	return out, nil
}
