package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ecowaste-backend/internal/security"

	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	tokens := security.NewTokenManager("test-secret", 60)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromContext(r.Context())
		assert.True(t, ok)
		assert.Equal(t, int32(3), claims.UserID)
		w.WriteHeader(http.StatusNoContent)
	})
	protected := AuthMiddleware(tokens)(next)

	t.Run("ValidToken", func(t *testing.T) {
		token, err := tokens.GenerateAccessToken(3, "anna@example.com", "user")
		assert.NoError(t, err)

		r := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		protected.ServeHTTP(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("MissingHeader", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
		w := httptest.NewRecorder()
		protected.ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("MangledToken", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
		r.Header.Set("Authorization", "Bearer garbage")
		w := httptest.NewRecorder()
		protected.ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireStaff(t *testing.T) {
	ok := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) }

	t.Run("CollectorPasses", func(t *testing.T) {
		r := authedRequest(http.MethodPatch, "/api/collections/1/status", 2, "collector")
		w := httptest.NewRecorder()
		RequireStaff(ok)(w, r)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("ResidentForbidden", func(t *testing.T) {
		r := authedRequest(http.MethodPatch, "/api/collections/1/status", 3, "user")
		w := httptest.NewRecorder()
		RequireStaff(ok)(w, r)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	ok := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) }

	t.Run("AdminPasses", func(t *testing.T) {
		r := authedRequest(http.MethodGet, "/api/admin/users", 1, "admin")
		w := httptest.NewRecorder()
		RequireAdmin(ok)(w, r)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("CollectorForbidden", func(t *testing.T) {
		r := authedRequest(http.MethodGet, "/api/admin/users", 2, "collector")
		w := httptest.NewRecorder()
		RequireAdmin(ok)(w, r)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
