package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"bookcatalog/internal/entity"
	"bookcatalog/internal/httpx"
	"bookcatalog/internal/platform/crypto"
)

// TestSecret signs tokens in tests; never used outside _test binaries.
const TestSecret = "test-jwt-secret"

// Token returns a signed bearer token for the given user.
func Token(t *testing.T, userID int64, staff bool) string {
	t.Helper()
	token, err := crypto.GenerateToken(TestSecret, strconv.FormatInt(userID, 10), staff, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

// JSONRequest builds a request with an encoded JSON body.
func JSONRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	r := httptest.NewRequest(method, target, &buf)
	r.Header.Set("Content-Type", "application/json")
	return r
}

// AsPrincipal attaches an authenticated principal to the request
// context, bypassing the auth middleware the way handler tests do.
func AsPrincipal(r *http.Request, userID int64, staff bool) *http.Request {
	p := entity.Principal{UserID: userID, IsStaff: staff, Authenticated: true}
	return r.WithContext(httpx.ContextWithPrincipal(r.Context(), p))
}
