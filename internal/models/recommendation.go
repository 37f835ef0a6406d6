package models

import "time"

// Recommendation es el historial de una corrida del motor (se guarda en
// Mongo como best effort, la respuesta no depende de este insert).
type Recommendation struct {
	ID        string        `bson:"_id,omitempty" json:"id"`
	UserID    int           `bson:"userId" json:"userId"`
	Algo      string        `bson:"algo" json:"algo"`
	Params    any           `bson:"params" json:"params"`
	Items     []ScoredMovie `bson:"items" json:"items"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
}
