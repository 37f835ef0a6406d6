package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/models"
	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/payment"
)

// Fakes en memoria de los repositorios, con la misma semántica de
// "documento completo" que las implementaciones sobre Mongo.

type fakeUserStore struct {
	byID     map[int]*models.UserDoc
	nextID   int
	replaces int
}

func newFakeUserStore(users ...*models.UserDoc) *fakeUserStore {
	s := &fakeUserStore{byID: make(map[int]*models.UserDoc), nextID: 1}
	for _, u := range users {
		cp := *u
		s.byID[u.UserID] = &cp
		if u.UserID >= s.nextID {
			s.nextID = u.UserID + 1
		}
	}
	return s
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.UserDoc, error) {
	for _, u := range s.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) FindByID(_ context.Context, userID int) (*models.UserDoc, error) {
	u, ok := s.byID[userID]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (s *fakeUserStore) GetNextUserID(_ context.Context) (int, error) {
	return s.nextID, nil
}

func (s *fakeUserStore) Insert(_ context.Context, u *models.UserDoc) error {
	cp := *u
	s.byID[u.UserID] = &cp
	if u.UserID >= s.nextID {
		s.nextID = u.UserID + 1
	}
	return nil
}

func (s *fakeUserStore) Replace(_ context.Context, u *models.UserDoc) error {
	if _, ok := s.byID[u.UserID]; !ok {
		return fmt.Errorf("user %d not found", u.UserID)
	}
	cp := *u
	s.byID[u.UserID] = &cp
	s.replaces++
	return nil
}

func (s *fakeUserStore) Search(_ context.Context, role, q string, limit, offset int) ([]models.UserDoc, error) {
	var out []models.UserDoc
	for _, u := range s.byID {
		if role != "" && u.Role != role {
			continue
		}
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

type fakeWatchlistStore struct {
	byOwner map[string]*models.WatchlistDoc
	puts    int
}

func newFakeWatchlistStore() *fakeWatchlistStore {
	return &fakeWatchlistStore{byOwner: make(map[string]*models.WatchlistDoc)}
}

func (s *fakeWatchlistStore) Get(_ context.Context, owner string) (*models.WatchlistDoc, error) {
	w, ok := s.byOwner[owner]
	if !ok {
		return nil, nil
	}
	cp := *w
	cp.MovieIDs = append([]int(nil), w.MovieIDs...)
	return &cp, nil
}

func (s *fakeWatchlistStore) Put(_ context.Context, w *models.WatchlistDoc) error {
	cp := *w
	cp.MovieIDs = append([]int(nil), w.MovieIDs...)
	s.byOwner[w.Owner] = &cp
	s.puts++
	return nil
}

type fakeReviewStore struct {
	byID  map[string]*models.Review
	order []string
}

func newFakeReviewStore() *fakeReviewStore {
	return &fakeReviewStore{byID: make(map[string]*models.Review)}
}

func (s *fakeReviewStore) Insert(_ context.Context, rev *models.Review) error {
	cp := *rev
	s.byID[rev.ID] = &cp
	s.order = append(s.order, rev.ID)
	return nil
}

func (s *fakeReviewStore) FindByID(_ context.Context, id string) (*models.Review, error) {
	rev, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *rev
	return &cp, nil
}

func (s *fakeReviewStore) ListByMovie(_ context.Context, movieID, limit, offset int) ([]models.Review, error) {
	var out []models.Review
	for _, id := range s.order {
		if rev := s.byID[id]; rev != nil && rev.MovieID == movieID {
			out = append(out, *rev)
		}
	}
	// más recientes primero
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *fakeReviewStore) Delete(_ context.Context, id string) error {
	delete(s.byID, id)
	return nil
}

type fakeRatingStore struct {
	byKey map[string]*models.RatingDoc
}

func newFakeRatingStore() *fakeRatingStore {
	return &fakeRatingStore{byKey: make(map[string]*models.RatingDoc)}
}

func ratingKey(userID, movieID int) string { return fmt.Sprintf("%d:%d", userID, movieID) }

func (s *fakeRatingStore) UpsertRating(_ context.Context, userID, movieID int, rating float64) error {
	s.byKey[ratingKey(userID, movieID)] = &models.RatingDoc{
		UserID: userID, MovieID: movieID, Rating: rating,
	}
	return nil
}

func (s *fakeRatingStore) GetOne(_ context.Context, userID, movieID int) (*models.RatingDoc, error) {
	rd, ok := s.byKey[ratingKey(userID, movieID)]
	if !ok {
		return nil, nil
	}
	cp := *rd
	return &cp, nil
}

type fakeRecStore struct {
	inserted []models.Recommendation
}

func (s *fakeRecStore) Insert(_ context.Context, rec *models.Recommendation) error {
	s.inserted = append(s.inserted, *rec)
	return nil
}

func (s *fakeRecStore) FindByUser(_ context.Context, userID int, limit int64) ([]models.Recommendation, error) {
	var out []models.Recommendation
	for i := len(s.inserted) - 1; i >= 0; i-- {
		if s.inserted[i].UserID == userID {
			out = append(out, s.inserted[i])
		}
		if limit > 0 && int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

// recordingProvider registra los cobros que pasaron por el provider.
type recordingProvider struct {
	charges []payment.Charge
	fail    error
}

func (p *recordingProvider) Charge(_ context.Context, c payment.Charge) error {
	if p.fail != nil {
		return p.fail
	}
	p.charges = append(p.charges, c)
	return nil
}
