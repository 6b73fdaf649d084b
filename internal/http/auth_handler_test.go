package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookcatalog/internal/entity"
	"bookcatalog/internal/platform/crypto"
	"bookcatalog/internal/store/mocks"
	"bookcatalog/internal/testutil"
	"bookcatalog/internal/usecase"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockUserRepository(ctrl)
	handler := NewAuthHandler(mockRepo, testutil.TestSecret)

	t.Run("created with token", func(t *testing.T) {
		mockRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *entity.User) error {
				assert.Equal(t, "user1", u.Username)
				assert.NotEqual(t, "Passw0rd!long", u.Password, "password must be stored hashed")
				assert.True(t, crypto.VerifyPassword(u.Password, "Passw0rd!long"))
				u.ID = 11
				return nil
			})

		w := httptest.NewRecorder()
		r := testutil.JSONRequest(t, http.MethodPost, "/auth/register", map[string]any{
			"username": "user1", "password": "Passw0rd!long", "first_name": "Ivan", "last_name": "Petrov",
		})
		handler.Register(w, r)

		require.Equal(t, http.StatusCreated, w.Code)
		var resp struct {
			Data struct {
				Token string `json:"token"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		claims, err := crypto.ParseToken(testutil.TestSecret, resp.Data.Token)
		require.NoError(t, err)
		assert.Equal(t, "11", claims.Sub)
		assert.False(t, claims.Staff)
	})

	t.Run("short password is 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := testutil.JSONRequest(t, http.MethodPost, "/auth/register", map[string]any{
			"username": "user1", "password": "short",
		})
		handler.Register(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate username is 409", func(t *testing.T) {
		mockRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(usecase.ErrAlreadyExists)

		w := httptest.NewRecorder()
		r := testutil.JSONRequest(t, http.MethodPost, "/auth/register", map[string]any{
			"username": "user1", "password": "Passw0rd!long",
		})
		handler.Register(w, r)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockUserRepository(ctrl)
	handler := NewAuthHandler(mockRepo, testutil.TestSecret)

	hash, err := crypto.HashPassword("Passw0rd!long")
	require.NoError(t, err)
	staffUser := entity.User{ID: 2, Username: "admin", Password: hash, IsStaff: true}

	t.Run("staff flag carried into token", func(t *testing.T) {
		mockRepo.EXPECT().GetByUsername(gomock.Any(), "admin").Return(staffUser, nil)

		w := httptest.NewRecorder()
		r := testutil.JSONRequest(t, http.MethodPost, "/auth/login", map[string]any{
			"username": "admin", "password": "Passw0rd!long",
		})
		handler.Login(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Data struct {
				Token string `json:"token"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		claims, err := crypto.ParseToken(testutil.TestSecret, resp.Data.Token)
		require.NoError(t, err)
		assert.Equal(t, "2", claims.Sub)
		assert.True(t, claims.Staff)
	})

	t.Run("wrong password is 401", func(t *testing.T) {
		mockRepo.EXPECT().GetByUsername(gomock.Any(), "admin").Return(staffUser, nil)

		w := httptest.NewRecorder()
		r := testutil.JSONRequest(t, http.MethodPost, "/auth/login", map[string]any{
			"username": "admin", "password": "wrong-password",
		})
		handler.Login(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown user is 401, not 404", func(t *testing.T) {
		mockRepo.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(entity.User{}, usecase.ErrNotFound)

		w := httptest.NewRecorder()
		r := testutil.JSONRequest(t, http.MethodPost, "/auth/login", map[string]any{
			"username": "ghost", "password": "whatever1",
		})
		handler.Login(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
