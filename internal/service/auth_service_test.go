package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/models"
)

const testSecret = "secreto-de-test"

func TestRegisterAndLogin(t *testing.T) {
	users := newFakeUserStore()
	svc := NewAuthService(users, testSecret)
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterUserData{
		Email:          "ana@example.com",
		Password:       "hunter2",
		Name:           "Ana",
		FavoriteGenres: []string{"Sci-Fi"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, u.UserID)
	assert.Equal(t, "user", u.Role)
	assert.Equal(t, models.TierFree, u.Subscription.Tier)
	assert.NotEqual(t, "hunter2", u.PasswordHash)

	token, logged, err := svc.Login(ctx, "ana@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, u.UserID, logged.UserID)

	// el token firma sub y role con el secret del servicio
	parsed, err := jwt.Parse(token, func(tk *jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(1), claims["sub"])
	assert.Equal(t, "user", claims["role"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewAuthService(newFakeUserStore(), testSecret)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterUserData{Email: "a@b.com", Password: "x"})
	require.NoError(t, err)
	_, err = svc.Register(ctx, RegisterUserData{Email: "a@b.com", Password: "y"})
	assert.Error(t, err)
}

func TestRegisterValidation(t *testing.T) {
	svc := NewAuthService(newFakeUserStore(), testSecret)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterUserData{Email: "", Password: "x"})
	assert.Error(t, err)
	_, err = svc.Register(ctx, RegisterUserData{Email: "a@b.com", Password: ""})
	assert.Error(t, err)
	_, err = svc.Register(ctx, RegisterUserData{Email: "a@b.com", Password: "x", Role: "root"})
	assert.Error(t, err)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc := NewAuthService(newFakeUserStore(), testSecret)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterUserData{Email: "a@b.com", Password: "correcta"})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "a@b.com", "incorrecta")
	assert.Error(t, err)
	_, _, err = svc.Login(ctx, "nadie@b.com", "correcta")
	assert.Error(t, err)
}

func TestUpdateUser(t *testing.T) {
	users := newFakeUserStore()
	svc := NewAuthService(users, testSecret)
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterUserData{Email: "a@b.com", Password: "x", Name: "A"})
	require.NoError(t, err)

	name := "Ana María"
	role := "admin"
	require.NoError(t, svc.UpdateUser(ctx, u.UserID, UpdateUserData{Name: &name, Role: &role}))

	stored, _ := users.FindByID(ctx, u.UserID)
	assert.Equal(t, "Ana María", stored.Name)
	assert.Equal(t, "admin", stored.Role)

	// sin campos no hay nada que actualizar
	assert.Error(t, svc.UpdateUser(ctx, u.UserID, UpdateUserData{}))

	// email duplicado contra otro usuario
	other, err := svc.Register(ctx, RegisterUserData{Email: "b@b.com", Password: "x"})
	require.NoError(t, err)
	dup := "a@b.com"
	assert.Error(t, svc.UpdateUser(ctx, other.UserID, UpdateUserData{Email: &dup}))

	assert.ErrorIs(t, svc.UpdateUser(ctx, 999, UpdateUserData{Name: &name}), ErrUserNotFound)
}

func TestRegisterAssignsSequentialIDs(t *testing.T) {
	svc := NewAuthService(newFakeUserStore(), testSecret)
	ctx := context.Background()

	a, err := svc.Register(ctx, RegisterUserData{Email: "a@b.com", Password: "x"})
	require.NoError(t, err)
	b, err := svc.Register(ctx, RegisterUserData{Email: "b@b.com", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, a.UserID+1, b.UserID)
}
