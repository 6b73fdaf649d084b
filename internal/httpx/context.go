package httpx

import (
	"context"
	"net/http"

	"bookcatalog/internal/entity"
)

type contextKey string

const (
	principalKey contextKey = "principal"
	requestIDKey contextKey = "requestID"
)

// PrincipalFrom retrieves the acting identity from the request context.
// Requests that never passed auth middleware yield the zero Principal
// (unauthenticated).
func PrincipalFrom(r *http.Request) entity.Principal {
	if p, ok := r.Context().Value(principalKey).(entity.Principal); ok {
		return p
	}
	return entity.Principal{}
}

// ContextWithPrincipal returns a new context carrying the acting identity.
func ContextWithPrincipal(ctx context.Context, p entity.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// RequestIDFrom retrieves the request ID from the request context.
func RequestIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// ContextWithRequestID returns a new context carrying the request ID.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}
