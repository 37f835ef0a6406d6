package service

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/catalog"
	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/event"
	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/models"

	"github.com/google/uuid"
)

const maxCommentLen = 1000 // runas

// ReviewStore abstrae el repositorio de reseñas.
type ReviewStore interface {
	Insert(ctx context.Context, rev *models.Review) error
	FindByID(ctx context.Context, id string) (*models.Review, error)
	ListByMovie(ctx context.Context, movieID, limit, offset int) ([]models.Review, error)
	Delete(ctx context.Context, id string) error
}

// RatingStore abstrae el repositorio de valoraciones personales.
type RatingStore interface {
	UpsertRating(ctx context.Context, userID, movieID int, rating float64) error
	GetOne(ctx context.Context, userID, movieID int) (*models.RatingDoc, error)
}

// ReviewService maneja reseñas (append-only salvo borrado del autor) y
// la valoración personal 0..10 por película. Las validaciones cortan en
// el borde: ante input inválido no se muta nada.
type ReviewService struct {
	reviews ReviewStore
	ratings RatingStore
	catalog *catalog.Store
	bus     *event.Bus
	now     func() time.Time
}

func NewReviewService(reviews ReviewStore, ratings RatingStore, cat *catalog.Store, bus *event.Bus) *ReviewService {
	return &ReviewService{reviews: reviews, ratings: ratings, catalog: cat, bus: bus, now: time.Now}
}

// AddReview valida y agrega una reseña nueva.
func (s *ReviewService) AddReview(ctx context.Context, userID int, author string, movieID, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	if utf8.RuneCountInString(comment) > maxCommentLen {
		return nil, ErrCommentTooLong
	}
	if _, ok := s.catalog.ByID(movieID); !ok {
		return nil, ErrMovieNotFound
	}
	if author == "" {
		author = fmt.Sprintf("user-%d", userID)
	}

	rev := &models.Review{
		ID:        uuid.NewString(),
		MovieID:   movieID,
		UserID:    userID,
		Author:    author,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: s.now(),
	}
	if err := s.reviews.Insert(ctx, rev); err != nil {
		return nil, err
	}

	s.bus.Publish(event.TopicReviews)
	return rev, nil
}

func (s *ReviewService) ListByMovie(ctx context.Context, movieID, limit, offset int) ([]models.Review, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.reviews.ListByMovie(ctx, movieID, limit, offset)
}

// DeleteOwn borra una reseña solo si pertenece al usuario.
func (s *ReviewService) DeleteOwn(ctx context.Context, userID int, reviewID string) error {
	rev, err := s.reviews.FindByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if rev == nil {
		return ErrReviewNotFound
	}
	if rev.UserID != userID {
		return ErrNotReviewAuthor
	}

	if err := s.reviews.Delete(ctx, reviewID); err != nil {
		return err
	}
	s.bus.Publish(event.TopicReviews)
	return nil
}

// RateMovie upsertea la valoración personal (0..10).
func (s *ReviewService) RateMovie(ctx context.Context, userID, movieID int, rating float64) error {
	if rating < 0 || rating > 10 {
		return fmt.Errorf("rating must be between 0 and 10")
	}
	if _, ok := s.catalog.ByID(movieID); !ok {
		return ErrMovieNotFound
	}
	return s.ratings.UpsertRating(ctx, userID, movieID, rating)
}

func (s *ReviewService) GetMyRating(ctx context.Context, userID, movieID int) (*models.RatingDoc, error) {
	return s.ratings.GetOne(ctx, userID, movieID)
}
