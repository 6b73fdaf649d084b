package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bookcatalog/internal/entity"
	"bookcatalog/internal/platform/crypto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-jwt-secret"

func captureHandler(got *entity.Principal) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got = PrincipalFrom(r)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	token, err := crypto.GenerateToken(testSecret, "42", true, time.Hour)
	require.NoError(t, err)

	t.Run("valid token builds principal", func(t *testing.T) {
		var got entity.Principal
		handler := AuthMiddleware(testSecret)(captureHandler(&got))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		handler.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(42), got.UserID)
		assert.True(t, got.IsStaff)
		assert.True(t, got.Authenticated)
	})

	t.Run("missing header is 401", func(t *testing.T) {
		var got entity.Principal
		handler := AuthMiddleware(testSecret)(captureHandler(&got))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, got.Authenticated)
	})

	t.Run("garbage token is 401", func(t *testing.T) {
		var got entity.Principal
		handler := AuthMiddleware(testSecret)(captureHandler(&got))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer not-a-token")
		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestOptionalAuthMiddleware(t *testing.T) {
	token, err := crypto.GenerateToken(testSecret, "7", false, time.Hour)
	require.NoError(t, err)

	t.Run("no header passes through anonymous", func(t *testing.T) {
		var got entity.Principal
		handler := OptionalAuthMiddleware(testSecret)(captureHandler(&got))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.False(t, got.Authenticated)
	})

	t.Run("valid token attaches principal", func(t *testing.T) {
		var got entity.Principal
		handler := OptionalAuthMiddleware(testSecret)(captureHandler(&got))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		handler.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(7), got.UserID)
		assert.True(t, got.Authenticated)
	})

	t.Run("invalid token is still 401", func(t *testing.T) {
		var got entity.Principal
		handler := OptionalAuthMiddleware(testSecret)(captureHandler(&got))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer expired-or-garbage")
		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
