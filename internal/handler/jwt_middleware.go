package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/service"

	"github.com/golang-jwt/jwt/v5"
)

type ctxKey string

const (
	CtxUserID   ctxKey = "userId"
	CtxUserRole ctxKey = "role"
)

func parseToken(secret []byte, tokenStr string) (userID int, role string, ok bool) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return 0, "", false
	}

	claims, okClaims := token.Claims.(jwt.MapClaims)
	if !okClaims {
		return 0, "", false
	}
	subVal, okSub := claims["sub"].(float64)
	if !okSub {
		return 0, "", false
	}
	role, _ = claims["role"].(string)
	return int(subVal), role, true
}

// JWTAuth devuelve un middleware que valida el token JWT y mete userId y
// role en el contexto.
func JWTAuth(secret string) func(http.Handler) http.Handler {
	secretBytes := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				http.Error(w, "missing or invalid Authorization header", http.StatusUnauthorized)
				return
			}

			userID, role, ok := parseToken(secretBytes, strings.TrimPrefix(authHeader, "Bearer "))
			if !ok {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), CtxUserID, userID)
			ctx = context.WithValue(ctx, CtxUserRole, role)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalJWTAuth mete userId/role en el contexto si viene un token
// válido, y deja pasar igual si no viene (rutas que aceptan sesión
// anónima, como la watchlist).
func OptionalJWTAuth(secret string) func(http.Handler) http.Handler {
	secretBytes := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				if userID, role, ok := parseToken(secretBytes, strings.TrimPrefix(authHeader, "Bearer ")); ok {
					ctx := context.WithValue(r.Context(), CtxUserID, userID)
					ctx = context.WithValue(ctx, CtxUserRole, role)
					r = r.WithContext(ctx)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly solo deja pasar a role == "admin".
func AdminOnly() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, _ := r.Context().Value(CtxUserRole).(string)
			if role != "admin" {
				http.Error(w, "admin only", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// UserIDFromContext helper para sacar el userId del contexto.
func UserIDFromContext(ctx context.Context) int {
	if v := ctx.Value(CtxUserID); v != nil {
		if id, ok := v.(int); ok {
			return id
		}
	}
	return 0
}

// ownerFromRequest resuelve el dueño de la watchlist: usuario autenticado
// o sesión anónima vía X-Session-ID. Devuelve "" si no hay ninguno.
func ownerFromRequest(r *http.Request) string {
	if userID := UserIDFromContext(r.Context()); userID > 0 {
		return service.OwnerForUser(userID)
	}
	if sid := r.Header.Get("X-Session-ID"); sid != "" {
		return service.OwnerForSession(sid)
	}
	return ""
}
