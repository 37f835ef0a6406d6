package models

import "time"

// Review es una reseña de película. Append-only salvo borrado del autor.
type Review struct {
	ID        string    `json:"id" bson:"_id"`
	MovieID   int       `json:"movieId" bson:"movieId"`
	UserID    int       `json:"userId" bson:"userId"`
	Author    string    `json:"author" bson:"author"`
	Rating    int       `json:"rating" bson:"rating"` // estrellas 1..5
	Comment   string    `json:"comment" bson:"comment"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
