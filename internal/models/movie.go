package models

type CastMember struct {
	Name       string `json:"name" bson:"name"`
	Character  string `json:"character,omitempty" bson:"character,omitempty"`
	ProfileURL string `json:"profileUrl,omitempty" bson:"profileUrl,omitempty"`
}

// StreamingOffer es una opción de visionado en un proveedor externo.
type StreamingOffer struct {
	Provider     string   `json:"provider" bson:"provider"`
	URL          string   `json:"url" bson:"url"`
	Quality      string   `json:"quality,omitempty" bson:"quality,omitempty"` // SD|HD|4K
	Price        *float64 `json:"price,omitempty" bson:"price,omitempty"`
	Subscription bool     `json:"subscription,omitempty" bson:"subscription,omitempty"`
}

// Movie es una entrada del catálogo. El catálogo se carga una vez al
// arrancar y no se muta en runtime.
type Movie struct {
	ID            int              `json:"id" bson:"id"`
	Title         string           `json:"title" bson:"title"`
	Overview      string           `json:"overview" bson:"overview"`
	PosterURL     string           `json:"posterUrl" bson:"posterUrl"`
	BackdropURL   string           `json:"backdropUrl,omitempty" bson:"backdropUrl,omitempty"`
	ReleaseDate   string           `json:"releaseDate" bson:"releaseDate"` // ISO yyyy-mm-dd
	VoteAverage   float64          `json:"voteAverage" bson:"voteAverage"` // 0..10
	Genres        []string         `json:"genres" bson:"genres"`
	Runtime       int              `json:"runtime,omitempty" bson:"runtime,omitempty"` // minutos
	Director      string           `json:"director,omitempty" bson:"director,omitempty"`
	Cast          []CastMember     `json:"cast,omitempty" bson:"cast,omitempty"`
	Offers        []StreamingOffer `json:"offers,omitempty" bson:"offers,omitempty"`
	TrailerURL    string           `json:"trailerUrl,omitempty" bson:"trailerUrl,omitempty"`
	IsPremium     bool             `json:"isPremium,omitempty" bson:"isPremium,omitempty"`
	RentalPrice   *float64         `json:"rentalPrice,omitempty" bson:"rentalPrice,omitempty"`
	PurchasePrice *float64         `json:"purchasePrice,omitempty" bson:"purchasePrice,omitempty"`
}

// HasGenre compara el tag exacto (case-sensitive, igual que el catálogo).
func (m *Movie) HasGenre(genre string) bool {
	for _, g := range m.Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// Year devuelve el año calendario de ReleaseDate, o 0 si no parsea.
func (m *Movie) Year() int {
	if len(m.ReleaseDate) < 4 {
		return 0
	}
	y := 0
	for _, c := range m.ReleaseDate[:4] {
		if c < '0' || c > '9' {
			return 0
		}
		y = y*10 + int(c-'0')
	}
	return y
}

// ScoredMovie es una película con su score de relevancia.
type ScoredMovie struct {
	Movie Movie   `json:"movie" bson:"movie"`
	Score float64 `json:"score" bson:"score"`
}
