package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	model "github.com/petrosTsatsis/KilogBackend/internal/models"
	"github.com/petrosTsatsis/KilogBackend/internal/service"
	"github.com/petrosTsatsis/KilogBackend/internal/utils"
)

// Context keys
type contextKey string

const userContextKey = contextKey("user")

// Auth validates the bearer token issued by the identity provider and
// injects the matching local user into the request context. The token's
// subject is the external identity id.
func Auth(users *service.UserService, secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get("Authorization")
			if raw == "" {
				utils.ErrorSimple(w, http.StatusUnauthorized, "missing authorization token")
				return
			}
			raw = strings.TrimPrefix(raw, "Bearer ")

			token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				return []byte(secret), nil
			}, jwt.WithValidMethods([]string{"HS256"}))
			if err != nil || !token.Valid {
				utils.ErrorSimple(w, http.StatusUnauthorized, "invalid token")
				return
			}

			sub, err := token.Claims.GetSubject()
			if err != nil || sub == "" {
				utils.ErrorSimple(w, http.StatusUnauthorized, "token has no subject")
				return
			}

			user, err := users.GetByAuthID(r.Context(), sub)
			if err != nil {
				utils.ErrorSimple(w, http.StatusUnauthorized, fmt.Sprintf("unknown identity: %v", err))
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, *user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserFromContext returns the authenticated user injected by Auth.
func GetUserFromContext(r *http.Request) (model.User, error) {
	user, ok := r.Context().Value(userContextKey).(model.User)
	if !ok {
		return model.User{}, fmt.Errorf("user not found in context")
	}
	return user, nil
}
