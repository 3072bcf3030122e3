package http

import (
	"net/http"
	"strings"

	"bookreviews/internal/auth"
	"bookreviews/internal/httpx"
)

// AuthMiddleware rejects requests without a valid bearer token and stores the
// token's subject (the user id) in the request context.
func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				httpx.JSONError(w, http.StatusUnauthorized, "Not authorized, no token")
				return
			}
			token := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := auth.ParseToken(secret, token)
			if err != nil {
				httpx.JSONError(w, http.StatusUnauthorized, "Not authorized, token failed")
				return
			}

			ctx := httpx.ContextWithUserID(r.Context(), claims.Sub)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
