package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"bookreviews/internal/auth"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateTestToken issues a valid JWT for testing.
func GenerateTestToken(secret, userID string) string {
	token, _ := auth.GenerateToken(secret, userID, time.Hour)
	return token
}

// GenerateExpiredToken issues a JWT that expired an hour ago.
func GenerateExpiredToken(secret, userID string) string {
	c := auth.Claims{
		Sub: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	token, _ := t.SignedString([]byte(secret))
	return token
}

// NewRequest builds a request with an optional JSON body.
func NewRequest(method, path string, body any) *http.Request {
	var r *http.Request
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// NewRequestWithAuth builds a request carrying a bearer token.
func NewRequestWithAuth(method, path string, body any, token string) *http.Request {
	r := NewRequest(method, path, body)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	return r
}

// DecodeBody unmarshals a recorded response body into a generic map.
func DecodeBody(w *httptest.ResponseRecorder) map[string]any {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)
	var bodyMap map[string]any
	if len(bodyBytes) > 0 {
		_ = json.Unmarshal(bodyBytes, &bodyMap)
	}
	return bodyMap
}
