package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"bookcatalog/internal/entity"
	"bookcatalog/internal/httpx"
	"bookcatalog/internal/platform/crypto"
	"bookcatalog/internal/usecase"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	repo      usecase.UserRepository
	jwtSecret string
}

func NewAuthHandler(repo usecase.UserRepository, jwtSecret string) *AuthHandler {
	return &AuthHandler{repo: repo, jwtSecret: jwtSecret}
}

type registerRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=50"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  entity.User `json:"user"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var body registerRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "validation_error", "invalid JSON body", nil)
		return
	}
	if details := ValidateStruct(body); details != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "validation_error", "invalid registration payload", details)
		return
	}

	hash, err := crypto.HashPassword(body.Password)
	if err != nil {
		httpx.JSONError(r, w, http.StatusInternalServerError, "internal_error", "server error", nil)
		return
	}

	user := entity.User{
		Username:  body.Username,
		Password:  hash,
		FirstName: body.FirstName,
		LastName:  body.LastName,
	}
	if err := h.repo.Create(r.Context(), &user); err != nil {
		switch {
		case errors.Is(err, usecase.ErrAlreadyExists):
			httpx.JSONError(r, w, http.StatusConflict, "conflict", "username already taken", nil)
		default:
			httpx.JSONError(r, w, http.StatusInternalServerError, "internal_error", "server error", nil)
		}
		return
	}

	token, err := crypto.GenerateToken(h.jwtSecret, strconv.FormatInt(user.ID, 10), user.IsStaff, tokenTTL)
	if err != nil {
		httpx.JSONError(r, w, http.StatusInternalServerError, "internal_error", "server error", nil)
		return
	}
	httpx.JSONSuccessCreated(r, w, authResponse{Token: token, User: user})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var body loginRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "validation_error", "invalid JSON body", nil)
		return
	}
	if details := ValidateStruct(body); details != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "validation_error", "invalid login payload", details)
		return
	}

	user, err := h.repo.GetByUsername(r.Context(), body.Username)
	if err != nil && !errors.Is(err, usecase.ErrNotFound) {
		httpx.JSONError(r, w, http.StatusInternalServerError, "internal_error", "server error", nil)
		return
	}
	if errors.Is(err, usecase.ErrNotFound) || !crypto.VerifyPassword(user.Password, body.Password) {
		httpx.JSONError(r, w, http.StatusUnauthorized, "unauthorized", "invalid username or password", nil)
		return
	}

	token, err := crypto.GenerateToken(h.jwtSecret, strconv.FormatInt(user.ID, 10), user.IsStaff, tokenTTL)
	if err != nil {
		httpx.JSONError(r, w, http.StatusInternalServerError, "internal_error", "server error", nil)
		return
	}
	httpx.JSONSuccess(r, w, authResponse{Token: token, User: user})
}
