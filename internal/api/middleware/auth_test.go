package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daleelashes/booking-service/internal/service/admins/models"
	"github.com/daleelashes/booking-service/pkg/authtoken"
)

type fakeValidator struct {
	claims *authtoken.Claims
	err    error
}

func (f fakeValidator) Validate(string) (*authtoken.Claims, error) {
	return f.claims, f.err
}

type fakeAdminProvider struct {
	admins map[int64]*models.AdminResponse
}

func (f fakeAdminProvider) GetByID(_ context.Context, id int64) (*models.AdminResponse, error) {
	adm, ok := f.admins[id]
	if !ok {
		return nil, errors.New("admin not found")
	}
	return adm, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func okHandler(t *testing.T, wantID int64, wantRole string) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetAdminID(r.Context())
		require.True(t, ok)
		assert.Equal(t, wantID, id)

		role, ok := GetAdminRole(r.Context())
		require.True(t, ok)
		assert.Equal(t, wantRole, role)

		w.WriteHeader(http.StatusOK)
	})
}

func TestAuth(t *testing.T) {
	provider := fakeAdminProvider{admins: map[int64]*models.AdminResponse{
		1: {ID: 1, Email: "owner@example.com", Role: "super_admin", Active: true},
		2: {ID: 2, Email: "former@example.com", Role: "admin", Active: false},
	}}

	t.Run("valid token passes identity to handler", func(t *testing.T) {
		validator := fakeValidator{claims: &authtoken.Claims{AdminID: 1, Email: "owner@example.com", Role: "super_admin"}}
		mw := Auth(validator, provider, nopLogger{})

		req := httptest.NewRequest(http.MethodGet, "/api/admin/me", nil)
		req.Header.Set("Authorization", "Bearer some-token")
		rec := httptest.NewRecorder()

		mw(okHandler(t, 1, "super_admin")).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		mw := Auth(fakeValidator{}, provider, nopLogger{})

		req := httptest.NewRequest(http.MethodGet, "/api/admin/me", nil)
		rec := httptest.NewRecorder()

		mw(okHandler(t, 0, "")).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		mw := Auth(fakeValidator{}, provider, nopLogger{})

		req := httptest.NewRequest(http.MethodGet, "/api/admin/me", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()

		mw(okHandler(t, 0, "")).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		mw := Auth(fakeValidator{err: authtoken.ErrExpiredToken}, provider, nopLogger{})

		req := httptest.NewRequest(http.MethodGet, "/api/admin/me", nil)
		req.Header.Set("Authorization", "Bearer expired")
		rec := httptest.NewRecorder()

		mw(okHandler(t, 0, "")).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("disabled admin is rejected", func(t *testing.T) {
		validator := fakeValidator{claims: &authtoken.Claims{AdminID: 2, Email: "former@example.com", Role: "admin"}}
		mw := Auth(validator, provider, nopLogger{})

		req := httptest.NewRequest(http.MethodGet, "/api/admin/me", nil)
		req.Header.Set("Authorization", "Bearer some-token")
		rec := httptest.NewRecorder()

		mw(okHandler(t, 0, "")).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token for unknown admin", func(t *testing.T) {
		validator := fakeValidator{claims: &authtoken.Claims{AdminID: 99, Email: "ghost@example.com", Role: "admin"}}
		mw := Auth(validator, provider, nopLogger{})

		req := httptest.NewRequest(http.MethodGet, "/api/admin/me", nil)
		req.Header.Set("Authorization", "Bearer some-token")
		rec := httptest.NewRecorder()

		mw(okHandler(t, 0, "")).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireSuperAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mw := RequireSuperAdmin(nopLogger{})

	t.Run("super_admin passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/admins", nil)
		ctx := context.WithValue(req.Context(), adminRoleKey, "super_admin")
		rec := httptest.NewRecorder()

		mw(next).ServeHTTP(rec, req.WithContext(ctx))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("regular admin is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/admins", nil)
		ctx := context.WithValue(req.Context(), adminRoleKey, "admin")
		rec := httptest.NewRecorder()

		mw(next).ServeHTTP(rec, req.WithContext(ctx))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing role is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/admins", nil)
		rec := httptest.NewRecorder()

		mw(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
