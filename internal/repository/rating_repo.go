package repository

import (
	"context"
	"time"

	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/db"
	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RatingRepository struct {
	col *mongo.Collection
}

func NewRatingRepository() *RatingRepository {
	return &RatingRepository{col: db.DB().Collection("ratings")}
}

// UpsertRating guarda la valoración personal (0..10) por (userId, movieId).
func (r *RatingRepository) UpsertRating(ctx context.Context, userID, movieID int, rating float64) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"userId": userID, "movieId": movieID},
		bson.M{"$set": bson.M{
			"rating": rating,
			// guardamos epoch (int64)
			"timestamp": time.Now().Unix(),
		}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *RatingRepository) GetOne(ctx context.Context, userID, movieID int) (*models.RatingDoc, error) {
	var rd models.RatingDoc
	err := r.col.FindOne(ctx, bson.M{"userId": userID, "movieId": movieID}).Decode(&rd)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &rd, err
}

func (r *RatingRepository) GetByUser(ctx context.Context, userID int) ([]models.RatingDoc, error) {
	cur, err := r.col.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.RatingDoc
	for cur.Next(ctx) {
		var rd models.RatingDoc
		if err := cur.Decode(&rd); err != nil {
			return nil, err
		}
		out = append(out, rd)
	}
	return out, cur.Err()
}
