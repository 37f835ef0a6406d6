package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// UserStore es lo que los servicios necesitan del repositorio de
// usuarios; en producción lo implementa repository.UserRepository y en
// tests un fake en memoria.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.UserDoc, error)
	FindByID(ctx context.Context, userID int) (*models.UserDoc, error)
	GetNextUserID(ctx context.Context) (int, error)
	Insert(ctx context.Context, u *models.UserDoc) error
	Replace(ctx context.Context, u *models.UserDoc) error
	Search(ctx context.Context, role, q string, limit, offset int) ([]models.UserDoc, error)
}

type AuthService struct {
	users     UserStore
	jwtSecret []byte
}

type RegisterUserData struct {
	Email    string
	Password string
	Name     string
	Role     string

	FavoriteGenres []string
}

type UpdateUserData struct {
	Email    *string
	Role     *string
	Password *string
	Name     *string
}

func NewAuthService(users UserStore, secret string) *AuthService {
	return &AuthService{users: users, jwtSecret: []byte(secret)}
}

// ================== REGISTER & LOGIN ==================

// Register crea un usuario nuevo, siempre free-tier.
func (s *AuthService) Register(ctx context.Context, data RegisterUserData) (*models.UserDoc, error) {
	if data.Email == "" || data.Password == "" {
		return nil, fmt.Errorf("email y password son requeridos")
	}

	existing, err := s.users.FindByEmail(ctx, data.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered")
	}

	nextID, err := s.users.GetNextUserID(ctx)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := data.Role
	if role == "" {
		role = "user"
	}
	if role != "user" && role != "admin" {
		return nil, fmt.Errorf("invalid role (must be user|admin)")
	}

	now := time.Now().UTC().Format(time.RFC3339)

	u := &models.UserDoc{
		UserID:         nextID,
		Email:          data.Email,
		Name:           data.Name,
		PasswordHash:   string(hash),
		Role:           role,
		FavoriteGenres: data.FavoriteGenres,
		Subscription:   models.Subscription{Tier: models.TierFree},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.users.Insert(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.UserDoc, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if u == nil {
		return "", nil, fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  u.UserID,
		"role": u.Role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	})
	sToken, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, err
	}
	return sToken, u, nil
}

// ================== UPDATE USER ==================

// UpdateUser actualiza campos opcionales de un usuario y persiste el
// documento completo.
func (s *AuthService) UpdateUser(ctx context.Context, userID int, data UpdateUserData) error {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}

	changed := false

	if data.Email != nil {
		if *data.Email == "" {
			return fmt.Errorf("email cannot be empty")
		}
		existing, err := s.users.FindByEmail(ctx, *data.Email)
		if err != nil {
			return err
		}
		if existing != nil && existing.UserID != userID {
			return fmt.Errorf("email already in use")
		}
		u.Email = *data.Email
		changed = true
	}

	if data.Role != nil {
		if *data.Role != "user" && *data.Role != "admin" {
			return fmt.Errorf("invalid role (must be user|admin)")
		}
		u.Role = *data.Role
		changed = true
	}

	if data.Password != nil {
		if *data.Password == "" {
			return fmt.Errorf("password cannot be empty")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*data.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.PasswordHash = string(hash)
		changed = true
	}

	if data.Name != nil {
		u.Name = *data.Name
		changed = true
	}

	if !changed {
		return fmt.Errorf("no fields to update")
	}

	u.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return s.users.Replace(ctx, u)
}

func (s *AuthService) ListUsers(ctx context.Context, role, q string, limit, offset int) ([]models.UserDoc, error) {
	return s.users.Search(ctx, role, q, limit, offset)
}

func (s *AuthService) GetUserByID(ctx context.Context, userID int) (*models.UserDoc, error) {
	return s.users.FindByID(ctx, userID)
}
