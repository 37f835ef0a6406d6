package repository

import (
	"context"

	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/db"
	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReviewRepository struct {
	col *mongo.Collection
}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{col: db.DB().Collection("reviews")}
}

func (r *ReviewRepository) Insert(ctx context.Context, rev *models.Review) error {
	_, err := r.col.InsertOne(ctx, rev)
	return err
}

func (r *ReviewRepository) FindByID(ctx context.Context, id string) (*models.Review, error) {
	var rev models.Review
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&rev)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &rev, err
}

// ListByMovie devuelve las reseñas de una película, más recientes primero.
func (r *ReviewRepository) ListByMovie(ctx context.Context, movieID, limit, offset int) ([]models.Review, error) {
	opts := options.Find().
		SetLimit(int64(limit)).
		SetSkip(int64(offset)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cur, err := r.col.Find(ctx, bson.M{"movieId": movieID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Review
	for cur.Next(ctx) {
		var rev models.Review
		if err := cur.Decode(&rev); err != nil {
			return nil, err
		}
		out = append(out, rev)
	}
	return out, cur.Err()
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
