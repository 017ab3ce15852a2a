package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cinema-manager/internal/data/entity"
	"cinema-manager/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testJWT = utils.JWTConfig{
	Secret:      "test-secret",
	Header:      "x-access-token",
	ExpiryHours: 1,
}

func signedToken(t *testing.T, role string) (uuid.UUID, string) {
	t.Helper()

	userID := uuid.New()
	token, err := utils.GenerateToken(testJWT, userID, role)
	require.NoError(t, err)
	return userID, token
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	userID, token := signedToken(t, "USER")

	var gotID uuid.UUID
	var gotRole string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = utils.GetUserIDFromContext(r.Context())
		gotRole, _ = utils.GetRoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	handler := Authenticate(testJWT, zap.NewNop())(next)

	req := httptest.NewRequest(http.MethodGet, "/api/halls/all", nil)
	req.Header.Set(testJWT.Header, token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, userID, gotID)
	require.Equal(t, "USER", gotRole)
}

func TestAuthenticateMissingToken(t *testing.T) {
	t.Parallel()

	handler := Authenticate(testJWT, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/halls/all", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "No token provided")
}

func TestAuthenticateInvalidToken(t *testing.T) {
	t.Parallel()

	handler := Authenticate(testJWT, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run on a bad token")
	}))

	for _, bad := range []string{"garbage", "a.b.c"} {
		req := httptest.NewRequest(http.MethodGet, "/api/halls/all", nil)
		req.Header.Set(testJWT.Header, bad)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "Invalid Token")
	}
}

func TestAuthenticateWrongSecret(t *testing.T) {
	t.Parallel()

	foreign := utils.JWTConfig{Secret: "other-secret", Header: testJWT.Header, ExpiryHours: 1}
	token, err := utils.GenerateToken(foreign, uuid.New(), "USER")
	require.NoError(t, err)

	handler := Authenticate(testJWT, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run on a forged token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/halls/all", nil)
	req.Header.Set(testJWT.Header, token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequireRole(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	gate := func(roles ...entity.UserRole) http.Handler {
		return Authenticate(testJWT, zap.NewNop())(RequireRole(zap.NewNop(), roles...)(next))
	}

	tests := []struct {
		name     string
		role     string
		allowed  []entity.UserRole
		wantCode int
	}{
		{"exact match", "HALL_MANAGER", []entity.UserRole{entity.RoleHallManager}, http.StatusOK},
		{"one of several", "SUPER_ADMIN", []entity.UserRole{entity.RoleSuperAdmin, entity.RoleMoviesManager}, http.StatusOK},
		{"wrong role", "USER", []entity.UserRole{entity.RoleSuperAdmin}, http.StatusForbidden},
		{"unassigned blocked", "UNASSIGNED", []entity.UserRole{entity.RoleHallManager}, http.StatusForbidden},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, token := signedToken(t, tc.role)

			req := httptest.NewRequest(http.MethodPost, "/api/halls/add", nil)
			req.Header.Set(testJWT.Header, token)
			rec := httptest.NewRecorder()

			gate(tc.allowed...).ServeHTTP(rec, req)

			require.Equal(t, tc.wantCode, rec.Code)
		})
	}
}

func TestRequireRoleWithoutAuthenticate(t *testing.T) {
	t.Parallel()

	// RequireRole on its own has no identity to check
	handler := RequireRole(zap.NewNop(), entity.RoleSuperAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without identity")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/admin", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
