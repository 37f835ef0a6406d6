package models

import "time"

// WatchlistDoc guarda los ids de película marcados por un owner. El owner
// es "user:<id>" para sesiones autenticadas o "session:<uuid>" para
// sesiones anónimas. Sin duplicados; el orden de inserción se conserva
// solo para presentación.
type WatchlistDoc struct {
	Owner     string    `json:"owner" bson:"_id"`
	MovieIDs  []int     `json:"movieIds" bson:"movieIds"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (w *WatchlistDoc) Has(movieID int) bool {
	for _, id := range w.MovieIDs {
		if id == movieID {
			return true
		}
	}
	return false
}
