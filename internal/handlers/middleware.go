package handlers

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"gitlab.com/codecamp-2025.net/internal/domain"
)

type contextKey string

const authPayloadKey contextKey = "authPayload"

type MiddlewareProvider struct {
	SecretOption string
}

func New() *MiddlewareProvider {
	return &MiddlewareProvider{
		SecretOption: os.Getenv("JWT_SECRET"),
	}
}

func (m *MiddlewareProvider) secret() []byte {
	return []byte(m.SecretOption)
}

func (m *MiddlewareProvider) JWTMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Authorization header missing", http.StatusUnauthorized)
			return
		}

		// Extract token from "Bearer <token>"
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return m.secret(), nil
		})

		if err != nil || !token.Valid {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		payload := domain.AuthPayload{}
		if v, ok := claims["user_id"].(string); ok {
			payload.UserID = v
		}
		if v, ok := claims["username"].(string); ok {
			payload.Username = v
		}

		next.ServeHTTP(w, r.WithContext(ContextWithAuthPayload(r.Context(), payload)))
	})
}

// ContextWithAuthPayload attaches an authenticated payload to the context
func ContextWithAuthPayload(ctx context.Context, payload domain.AuthPayload) context.Context {
	return context.WithValue(ctx, authPayloadKey, payload)
}

// AuthPayloadFromContext returns the payload stored by JWTMiddleware
func AuthPayloadFromContext(ctx context.Context) (domain.AuthPayload, bool) {
	payload, ok := ctx.Value(authPayloadKey).(domain.AuthPayload)
	return payload, ok
}
