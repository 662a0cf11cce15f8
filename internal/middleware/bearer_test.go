package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireBearer(t *testing.T) {
	var gotToken string
	handler := RequireBearer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken, _ = BearerFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("extracts the raw token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/customer/favorites", nil)
		req.Header.Set("Authorization", "Bearer the-token")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "the-token", gotToken)
	})

	t.Run("rejects a missing header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/customer/favorites", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects a non-bearer scheme", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/customer/favorites", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
