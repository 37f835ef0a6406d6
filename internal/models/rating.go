package models

// RatingDoc es la valoración personal (0..10) de un usuario sobre una
// película. Se upsertea por (userId, movieId).
type RatingDoc struct {
	UserID    int     `json:"userId" bson:"userId"`
	MovieID   int     `json:"movieId" bson:"movieId"`
	Rating    float64 `json:"rating" bson:"rating"`
	Timestamp int64   `json:"timestamp" bson:"timestamp"`
}
