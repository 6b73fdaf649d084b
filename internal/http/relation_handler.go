package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"bookcatalog/internal/httpx"
	"bookcatalog/internal/usecase"
)

type RelationHandler struct {
	repo usecase.RelationRepository
}

func NewRelationHandler(repo usecase.RelationRepository) *RelationHandler {
	return &RelationHandler{repo: repo}
}

type relationPatchRequest struct {
	Like *bool `json:"like"`
	Rate *int  `json:"rate"`
}

type relationView struct {
	Like bool `json:"like"`
	Rate *int `json:"rate"`
}

// Patch handles PATCH /book_relation/{bookId}. The relation's user is
// always the requester; it is never taken from the payload, so one
// user cannot touch another's relation. Absent fields stay untouched.
func (h *RelationHandler) Patch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	bookID, ok := parseItemID(r.URL.Path, "/book_relation/")
	if !ok {
		http.NotFound(w, r)
		return
	}

	principal := httpx.PrincipalFrom(r)
	if !principal.Authenticated {
		httpx.JSONError(r, w, http.StatusUnauthorized, "unauthorized", "Authentication required", nil)
		return
	}

	var body relationPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "validation_error", "invalid JSON body", nil)
		return
	}
	if body.Rate != nil && (*body.Rate < 1 || *body.Rate > 5) {
		httpx.JSONError(r, w, http.StatusBadRequest, "validation_error", "invalid relation payload", []httpx.ErrorDetail{
			{Field: "rate", Message: "rate must be between 1 and 5"},
		})
		return
	}

	rel, err := h.repo.Upsert(r.Context(), principal.UserID, bookID, usecase.RelationPatch{
		Like: body.Like,
		Rate: body.Rate,
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

	httpx.JSONSuccess(r, w, relationView{Like: rel.Like, Rate: rel.Rate})
}
