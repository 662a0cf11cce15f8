package middleware

import (
	"context"
	"net/http"
	"strings"

	"property-portal/internal/model"
)

type contextKey string

const bearerTokenContextKey contextKey = "bearer_token"

// RequireBearer extracts the caller's raw Bearer token into the request
// context. The gateway does not validate it; the upstream re-validates
// every token-gated call, so the only local check is presence.
func RequireBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := strings.TrimSpace(r.Header.Get("Authorization"))
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = jsonEncode(w, model.APIResponse{
				Success: false,
				Error: &model.APIError{
					Code:    "UNAUTHORIZED",
					Message: "missing or invalid authorization header",
				},
			})
			return
		}

		ctx := context.WithValue(r.Context(), bearerTokenContextKey, strings.TrimSpace(header[7:]))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// BearerFromContext returns the raw token stored by RequireBearer.
func BearerFromContext(ctx context.Context) (string, bool) {
	tokenString, ok := ctx.Value(bearerTokenContextKey).(string)
	return tokenString, ok && tokenString != ""
}
