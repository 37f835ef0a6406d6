package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/catalog"
	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/event"
	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/models"
	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/payment"

	"github.com/google/uuid"
)

// DefaultRentalHours es la duración de una renta cuando el caller no
// especifica otra.
const DefaultRentalHours = 48

// subscriptionDays es la duración del ciclo al hacer upgrade.
const subscriptionDays = 30

// precio mensual por tier
var tierPrices = map[string]float64{
	models.TierFree:    0,
	models.TierBasic:   7.99,
	models.TierPremium: 14.99,
}

// AccountService es el store de cuenta: suscripción, compras, rentas,
// métodos de pago y preferencias. Cada mutación reemplaza el documento
// completo del usuario, lo persiste y emite la señal de cambio.
type AccountService struct {
	users    UserStore
	catalog  *catalog.Store
	payments payment.Provider
	bus      *event.Bus

	// reloj inyectable para testear expiración de rentas
	now func() time.Time
}

func NewAccountService(users UserStore, cat *catalog.Store, payments payment.Provider, bus *event.Bus) *AccountService {
	return &AccountService{
		users:    users,
		catalog:  cat,
		payments: payments,
		bus:      bus,
		now:      time.Now,
	}
}

func (s *AccountService) getUser(ctx context.Context, userID int) (*models.UserDoc, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *AccountService) persist(ctx context.Context, u *models.UserDoc) error {
	u.UpdatedAt = s.now().UTC().Format(time.RFC3339)
	if err := s.users.Replace(ctx, u); err != nil {
		return err
	}
	s.bus.Publish(event.TopicAccount)
	return nil
}

func (s *AccountService) GetUser(ctx context.Context, userID int) (*models.UserDoc, error) {
	return s.getUser(ctx, userID)
}

// ================== SUSCRIPCIÓN ==================

// Upgrade cambia el tier (en cualquier dirección, sin prorrateo) y
// arranca un ciclo de 30 días con auto-renovación.
func (s *AccountService) Upgrade(ctx context.Context, userID int, tier string) (*models.UserDoc, error) {
	if !models.ValidTier(tier) {
		return nil, ErrInvalidTier
	}

	u, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if price := tierPrices[tier]; price > 0 {
		charge := payment.Charge{
			UserID:      userID,
			Amount:      price,
			Description: fmt.Sprintf("subscription %s", tier),
		}
		if err := s.payments.Charge(ctx, charge); err != nil {
			return nil, err
		}
	}

	now := s.now()
	end := now.AddDate(0, 0, subscriptionDays)
	u.Subscription = models.Subscription{
		Tier:      tier,
		StartDate: &now,
		EndDate:   &end,
		AutoRenew: true,
	}

	if err := s.persist(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// HasPremiumAccess: tier == premium.
func (s *AccountService) HasPremiumAccess(ctx context.Context, userID int) (bool, error) {
	u, err := s.getUser(ctx, userID)
	if err != nil {
		return false, err
	}
	return u.Subscription.Tier == models.TierPremium, nil
}

// ================== COMPRA Y RENTA ==================

// Purchase agrega la compra. Comprar dos veces la misma película es un
// no-op exitoso (una película aparece en compras a lo sumo una vez).
func (s *AccountService) Purchase(ctx context.Context, userID, movieID int, price float64) (*models.UserDoc, error) {
	movie, ok := s.catalog.ByID(movieID)
	if !ok {
		return nil, ErrMovieNotFound
	}

	u, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.IsPurchased(movieID) {
		return u, nil
	}

	if price <= 0 && movie.PurchasePrice != nil {
		price = *movie.PurchasePrice
	}

	charge := payment.Charge{
		UserID:      userID,
		Amount:      price,
		Description: fmt.Sprintf("purchase movie %d", movieID),
	}
	if err := s.payments.Charge(ctx, charge); err != nil {
		return nil, err
	}

	u.Purchases = append(u.Purchases, models.Purchase{
		MovieID: movieID,
		Date:    s.now(),
		Price:   price,
	})

	if err := s.persist(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Rent agrega una renta con expiry = now + duración. Re-rentar antes del
// vencimiento reemplaza el registro vigente (extiende la ventana) en vez
// de apilar duplicados; las rentas ya vencidas quedan como historial.
func (s *AccountService) Rent(ctx context.Context, userID, movieID int, price float64, durationHours int) (*models.UserDoc, error) {
	movie, ok := s.catalog.ByID(movieID)
	if !ok {
		return nil, ErrMovieNotFound
	}
	if durationHours <= 0 {
		durationHours = DefaultRentalHours
	}

	u, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if price <= 0 && movie.RentalPrice != nil {
		price = *movie.RentalPrice
	}

	charge := payment.Charge{
		UserID:      userID,
		Amount:      price,
		Description: fmt.Sprintf("rental movie %d", movieID),
	}
	if err := s.payments.Charge(ctx, charge); err != nil {
		return nil, err
	}

	now := s.now()
	rental := models.Rental{
		MovieID:    movieID,
		Date:       now,
		ExpiryDate: now.Add(time.Duration(durationHours) * time.Hour),
		Price:      price,
	}

	replaced := false
	for i := range u.Rentals {
		r := &u.Rentals[i]
		if r.MovieID == movieID && now.Before(r.ExpiryDate) {
			*r = rental
			replaced = true
			break
		}
	}
	if !replaced {
		u.Rentals = append(u.Rentals, rental)
	}

	if err := s.persist(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AccountService) IsMoviePurchased(ctx context.Context, userID, movieID int) (bool, error) {
	u, err := s.getUser(ctx, userID)
	if err != nil {
		return false, err
	}
	return u.IsPurchased(movieID), nil
}

func (s *AccountService) IsMovieRented(ctx context.Context, userID, movieID int) (bool, error) {
	u, err := s.getUser(ctx, userID)
	if err != nil {
		return false, err
	}
	return u.ActiveRental(movieID, s.now()) != nil, nil
}

// CanAccessMovie: acceso premium, o comprada, o rentada y vigente.
func (s *AccountService) CanAccessMovie(ctx context.Context, userID, movieID int) (bool, error) {
	u, err := s.getUser(ctx, userID)
	if err != nil {
		return false, err
	}
	if u.Subscription.Tier == models.TierPremium {
		return true, nil
	}
	if u.IsPurchased(movieID) {
		return true, nil
	}
	return u.ActiveRental(movieID, s.now()) != nil, nil
}

// ================== PREFERENCIAS ==================

type PreferencesData struct {
	FavoriteGenres *[]string
	MinRating      *int
	YearFrom       *int
	YearTo         *int
}

// SetPreferences actualiza las preferencias de descubrimiento que
// alimentan el motor de recomendación y los filtros por defecto.
func (s *AccountService) SetPreferences(ctx context.Context, userID int, data PreferencesData) (*models.UserDoc, error) {
	u, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if data.FavoriteGenres != nil {
		u.FavoriteGenres = *data.FavoriteGenres
	}
	if data.MinRating != nil {
		u.MinRating = *data.MinRating
	}
	if data.YearFrom != nil {
		u.YearFrom = *data.YearFrom
	}
	if data.YearTo != nil {
		u.YearTo = *data.YearTo
	}

	if err := s.persist(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// ================== MÉTODOS DE PAGO ==================

// AddPaymentMethod agrega un método; a lo sumo uno queda como default.
func (s *AccountService) AddPaymentMethod(ctx context.Context, userID int, pm models.PaymentMethod) (*models.UserDoc, error) {
	u, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if pm.ID == "" {
		pm.ID = uuid.NewString()
	}
	if len(u.PaymentMethods) == 0 {
		pm.IsDefault = true
	}
	if pm.IsDefault {
		for i := range u.PaymentMethods {
			u.PaymentMethods[i].IsDefault = false
		}
	}
	u.PaymentMethods = append(u.PaymentMethods, pm)

	if err := s.persist(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AccountService) SetDefaultPaymentMethod(ctx context.Context, userID int, methodID string) (*models.UserDoc, error) {
	u, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range u.PaymentMethods {
		isIt := u.PaymentMethods[i].ID == methodID
		u.PaymentMethods[i].IsDefault = isIt
		if isIt {
			found = true
		}
	}
	if !found {
		return nil, fmt.Errorf("payment method %s not found", methodID)
	}

	if err := s.persist(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
