package httpx

import (
	"net/http"
	"strconv"
	"strings"

	"bookcatalog/internal/entity"
	"bookcatalog/internal/platform/crypto"
)

func principalFromToken(secret, token string) (entity.Principal, bool) {
	claims, err := crypto.ParseToken(secret, token)
	if err != nil {
		return entity.Principal{}, false
	}
	userID, err := strconv.ParseInt(claims.Sub, 10, 64)
	if err != nil {
		return entity.Principal{}, false
	}
	return entity.Principal{
		UserID:        userID,
		IsStaff:       claims.Staff,
		Authenticated: true,
	}, true
}

// AuthMiddleware rejects requests without a valid bearer token.
func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				JSONError(r, w, http.StatusUnauthorized, "unauthorized", "Authentication required", nil)
				return
			}

			principal, ok := principalFromToken(secret, strings.TrimPrefix(authHeader, "Bearer "))
			if !ok {
				JSONError(r, w, http.StatusUnauthorized, "unauthorized", "Authentication required", nil)
				return
			}

			ctx := ContextWithPrincipal(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuthMiddleware attaches a principal when a bearer token is
// present and lets anonymous requests through with the zero principal.
// A token that is present but invalid is still a 401; staying silent
// there would let expired sessions look anonymous.
func OptionalAuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}
			if !strings.HasPrefix(authHeader, "Bearer ") {
				JSONError(r, w, http.StatusUnauthorized, "unauthorized", "Authentication required", nil)
				return
			}

			principal, ok := principalFromToken(secret, strings.TrimPrefix(authHeader, "Bearer "))
			if !ok {
				JSONError(r, w, http.StatusUnauthorized, "unauthorized", "Authentication required", nil)
				return
			}

			ctx := ContextWithPrincipal(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
