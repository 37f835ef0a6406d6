package models

import "time"

// Tiers de suscripción.
const (
	TierFree    = "free"
	TierBasic   = "basic"
	TierPremium = "premium"
)

func ValidTier(t string) bool {
	return t == TierFree || t == TierBasic || t == TierPremium
}

type Subscription struct {
	Tier      string     `json:"tier" bson:"tier"`
	StartDate *time.Time `json:"startDate,omitempty" bson:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty" bson:"endDate,omitempty"`
	AutoRenew bool       `json:"autoRenew" bson:"autoRenew"`
}

type Purchase struct {
	MovieID int       `json:"movieId" bson:"movieId"`
	Date    time.Time `json:"date" bson:"date"`
	Price   float64   `json:"price" bson:"price"`
}

type Rental struct {
	MovieID    int       `json:"movieId" bson:"movieId"`
	Date       time.Time `json:"date" bson:"date"`
	ExpiryDate time.Time `json:"expiryDate" bson:"expiryDate"`
	Price      float64   `json:"price" bson:"price"`
}

type PaymentMethod struct {
	ID        string `json:"id" bson:"id"`
	Type      string `json:"type" bson:"type"` // card|paypal
	LastFour  string `json:"lastFour,omitempty" bson:"lastFour,omitempty"`
	ExpiryRaw string `json:"expiry,omitempty" bson:"expiry,omitempty"`
	IsDefault bool   `json:"isDefault" bson:"isDefault"`
}

// UserDoc es el documento completo del usuario. Cada mutación de cuenta
// reemplaza el documento entero en Mongo (last-writer-wins, sin merge).
type UserDoc struct {
	UserID       int    `json:"userId" bson:"userId"`
	Email        string `json:"email" bson:"email"`
	Name         string `json:"name" bson:"name"`
	PasswordHash string `json:"-" bson:"passwordHash"`
	Role         string `json:"role" bson:"role"` // user|admin

	// Preferencias de descubrimiento
	FavoriteGenres []string `json:"favoriteGenres,omitempty" bson:"favoriteGenres,omitempty"`
	MinRating      int      `json:"minRating,omitempty" bson:"minRating,omitempty"`
	YearFrom       int      `json:"yearFrom,omitempty" bson:"yearFrom,omitempty"`
	YearTo         int      `json:"yearTo,omitempty" bson:"yearTo,omitempty"`

	Subscription   Subscription    `json:"subscription" bson:"subscription"`
	Purchases      []Purchase      `json:"purchases,omitempty" bson:"purchases,omitempty"`
	Rentals        []Rental        `json:"rentals,omitempty" bson:"rentals,omitempty"`
	PaymentMethods []PaymentMethod `json:"paymentMethods,omitempty" bson:"paymentMethods,omitempty"`

	CreatedAt string `json:"createdAt" bson:"createdAt"`
	UpdatedAt string `json:"updatedAt" bson:"updatedAt"`
}

// DefaultUser devuelve el registro free-tier por defecto; se usa también
// como fallback cuando el documento persistido no se puede decodificar.
func DefaultUser(userID int) *UserDoc {
	return &UserDoc{
		UserID:       userID,
		Role:         "user",
		Subscription: Subscription{Tier: TierFree},
	}
}

// IsPurchased indica si el usuario ya compró la película.
func (u *UserDoc) IsPurchased(movieID int) bool {
	for _, p := range u.Purchases {
		if p.MovieID == movieID {
			return true
		}
	}
	return false
}

// ActiveRental devuelve la renta vigente (expiry en el futuro) más
// reciente para la película, si existe.
func (u *UserDoc) ActiveRental(movieID int, now time.Time) *Rental {
	var best *Rental
	for i := range u.Rentals {
		r := &u.Rentals[i]
		if r.MovieID != movieID || !now.Before(r.ExpiryDate) {
			continue
		}
		if best == nil || r.Date.After(best.Date) {
			best = r
		}
	}
	return best
}

// WatchedMovieIDs junta compras y rentas (vencidas o no); es el conjunto
// que el motor de recomendación excluye de los candidatos.
func (u *UserDoc) WatchedMovieIDs() []int {
	seen := make(map[int]bool)
	var out []int
	for _, p := range u.Purchases {
		if !seen[p.MovieID] {
			seen[p.MovieID] = true
			out = append(out, p.MovieID)
		}
	}
	for _, r := range u.Rentals {
		if !seen[r.MovieID] {
			seen[r.MovieID] = true
			out = append(out, r.MovieID)
		}
	}
	return out
}
