package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"bookcatalog/internal/httpx"
	"bookcatalog/internal/usecase"
)

type BookHandler struct {
	repo usecase.BookRepository
}

func NewBookHandler(repo usecase.BookRepository) *BookHandler {
	return &BookHandler{repo: repo}
}

type bookRequest struct {
	Name       string `json:"name" validate:"required"`
	Price      string `json:"price" validate:"required,price"`
	AuthorName string `json:"author_name"`
}

// Collection dispatches /book: GET lists, POST creates.
func (h *BookHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// Item dispatches /book/{id}: GET detail, PUT replace, DELETE remove.
func (h *BookHandler) Item(w http.ResponseWriter, r *http.Request) {
	id, ok := parseItemID(r.URL.Path, "/book/")
	if !ok {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodGet:
		h.detail(w, r, id)
	case http.MethodPut:
		h.update(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func parseItemID(path, prefix string) (int64, bool) {
	if !strings.HasPrefix(path, prefix) {
		return 0, false
	}
	raw := strings.TrimPrefix(path, prefix)
	if raw == "" || strings.Contains(raw, "/") {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (h *BookHandler) list(w http.ResponseWriter, r *http.Request) {
	params := usecase.ListParams{
		Search:   r.URL.Query().Get("search"),
		Ordering: r.URL.Query().Get("ordering"),
	}

	books, err := h.repo.List(r.Context(), params)
	if err != nil {
		httpx.JSONError(r, w, http.StatusInternalServerError, "internal_error", "server error", nil)
		return
	}
	httpx.JSONSuccess(r, w, books)
}

func (h *BookHandler) detail(w http.ResponseWriter, r *http.Request, id int64) {
	book, err := h.repo.GetDetail(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			httpx.JSONError(r, w, http.StatusNotFound, "not_found", "book not found", nil)
		default:
			httpx.JSONError(r, w, http.StatusInternalServerError, "internal_error", "server error", nil)
		}
		return
	}
	httpx.JSONSuccess(r, w, book)
}

func (h *BookHandler) create(w http.ResponseWriter, r *http.Request) {
	principal := httpx.PrincipalFrom(r)
	if !principal.Authenticated {
		httpx.JSONError(r, w, http.StatusUnauthorized, "unauthorized", "Authentication required", nil)
		return
	}

	var body bookRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "validation_error", "invalid JSON body", nil)
		return
	}
	if details := ValidateStruct(body); details != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "validation_error", "invalid book payload", details)
		return
	}

	created, err := h.repo.Create(r.Context(), usecase.BookInput{
		Name:       body.Name,
		Price:      body.Price,
		AuthorName: body.AuthorName,
	}, principal.UserID)
	if err != nil {
		httpx.JSONError(r, w, http.StatusInternalServerError, "internal_error", "server error", nil)
		return
	}
	httpx.JSONSuccessCreated(r, w, created)
}

func (h *BookHandler) update(w http.ResponseWriter, r *http.Request, id int64) {
	book, err := h.repo.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			httpx.JSONError(r, w, http.StatusNotFound, "not_found", "book not found", nil)
		default:
			httpx.JSONError(r, w, http.StatusInternalServerError, "internal_error", "server error", nil)
		}
		return
	}

	principal := httpx.PrincipalFrom(r)
	if !principal.Authenticated {
		httpx.JSONError(r, w, http.StatusUnauthorized, "unauthorized", "Authentication required", nil)
		return
	}
	if !usecase.CanMutateBook(principal, book) {
		httpx.JSONError(r, w, http.StatusForbidden, "forbidden", "only the owner or staff may modify this book", nil)
		return
	}

	var body bookRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "validation_error", "invalid JSON body", nil)
		return
	}
	if details := ValidateStruct(body); details != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "validation_error", "invalid book payload", details)
		return
	}

	updated, err := h.repo.Update(r.Context(), id, usecase.BookInput{
		Name:       body.Name,
		Price:      body.Price,
		AuthorName: body.AuthorName,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			httpx.JSONError(r, w, http.StatusNotFound, "not_found", "book not found", nil)
		default:
			httpx.JSONError(r, w, http.StatusInternalServerError, "internal_error", "server error", nil)
		}
		return
	}
	httpx.JSONSuccess(r, w, updated)
}

func (h *BookHandler) delete(w http.ResponseWriter, r *http.Request, id int64) {
	book, err := h.repo.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			httpx.JSONError(r, w, http.StatusNotFound, "not_found", "book not found", nil)
		default:
			httpx.JSONError(r, w, http.StatusInternalServerError, "internal_error", "server error", nil)
		}
		return
	}

	principal := httpx.PrincipalFrom(r)
	if !principal.Authenticated {
		httpx.JSONError(r, w, http.StatusUnauthorized, "unauthorized", "Authentication required", nil)
		return
	}
	if !usecase.CanMutateBook(principal, book) {
		httpx.JSONError(r, w, http.StatusForbidden, "forbidden", "only the owner or staff may delete this book", nil)
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			httpx.JSONError(r, w, http.StatusNotFound, "not_found", "book not found", nil)
		default:
			httpx.JSONError(r, w, http.StatusInternalServerError, "internal_error", "server error", nil)
		}
		return
	}
	httpx.JSONSuccessNoContent(w)
}
