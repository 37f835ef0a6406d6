package repository

import (
	"context"
	"log"

	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/db"
	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository() *UserRepository {
	return &UserRepository{col: db.DB().Collection("users")}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.UserDoc, error) {
	var u models.UserDoc
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &u, err
}

// FindByID carga el documento completo del usuario. Un documento que no
// decodifica se descarta en silencio y se sustituye por el registro
// free-tier por defecto.
func (r *UserRepository) FindByID(ctx context.Context, userID int) (*models.UserDoc, error) {
	var raw bson.Raw
	err := r.col.FindOne(ctx, bson.M{"userId": userID}).Decode(&raw)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return decodeUserDoc(userID, raw), nil
}

// decodeUserDoc decodifica el documento persistido; si está corrupto lo
// descarta y devuelve el registro free-tier por defecto.
func decodeUserDoc(userID int, raw bson.Raw) *models.UserDoc {
	var u models.UserDoc
	if err := bson.Unmarshal(raw, &u); err != nil {
		log.Printf("[users] documento corrupto para userId=%d, usando default: %v", userID, err)
		return models.DefaultUser(userID)
	}
	return &u
}

func (r *UserRepository) GetNextUserID(ctx context.Context) (int, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "userId", Value: -1}})
	var u models.UserDoc
	err := r.col.FindOne(ctx, bson.M{}, opts).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return u.UserID + 1, nil
}

func (r *UserRepository) Insert(ctx context.Context, u *models.UserDoc) error {
	_, err := r.col.InsertOne(ctx, u)
	return err
}

// Replace persiste el documento entero del usuario (upsert). Cada
// mutación de cuenta serializa el registro completo: last-writer-wins,
// sin merge ni detección de conflictos.
func (r *UserRepository) Replace(ctx context.Context, u *models.UserDoc) error {
	_, err := r.col.ReplaceOne(ctx,
		bson.M{"userId": u.UserID},
		u,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (r *UserRepository) Search(ctx context.Context, role, q string, limit, offset int) ([]models.UserDoc, error) {
	filter := bson.M{}
	if role != "" {
		filter["role"] = role
	}
	if q != "" {
		filter["$or"] = []bson.M{
			{"email": bson.M{"$regex": q, "$options": "i"}},
			{"name": bson.M{"$regex": q, "$options": "i"}},
		}
	}

	opts := options.Find().
		SetLimit(int64(limit)).
		SetSkip(int64(offset)).
		SetSort(bson.D{{Key: "userId", Value: 1}})

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.UserDoc
	for cur.Next(ctx) {
		var u models.UserDoc
		if err := cur.Decode(&u); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, cur.Err()
}
