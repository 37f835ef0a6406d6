package repository

import (
	"context"

	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/db"
	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type WatchlistRepository struct {
	col *mongo.Collection
}

func NewWatchlistRepository() *WatchlistRepository {
	return &WatchlistRepository{col: db.DB().Collection("watchlists")}
}

func (r *WatchlistRepository) Get(ctx context.Context, owner string) (*models.WatchlistDoc, error) {
	var w models.WatchlistDoc
	err := r.col.FindOne(ctx, bson.M{"_id": owner}).Decode(&w)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &w, err
}

// Put reemplaza el documento completo (upsert), igual que el store de
// usuarios: la watchlist se persiste entera en cada mutación.
func (r *WatchlistRepository) Put(ctx context.Context, w *models.WatchlistDoc) error {
	_, err := r.col.ReplaceOne(ctx,
		bson.M{"_id": w.Owner},
		w,
		options.Replace().SetUpsert(true),
	)
	return err
}
