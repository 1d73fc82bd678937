package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medequip-rental-backend/config"
	"medequip-rental-backend/internal/domain/entity"
	"medequip-rental-backend/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (*jwt.JWTService, *miniredis.Miniredis, *AuthMiddleware) {
	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  time.Minute,
		RefreshExpiry: time.Hour,
	})

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	return jwtService, mr, NewAuthMiddleware(jwtService, client)
}

func TestAuthenticate_ValidToken(t *testing.T) {
	jwtService, mr, authMiddleware := newAuthFixture(t)
	userID := uuid.New()

	token, tokenID, err := jwtService.GenerateAccessToken(userID, "clinic@example.com", entity.RoleClinic)
	require.NoError(t, err)
	mr.Set(fmt.Sprintf("access_token:%s:%s", userID, tokenID), "valid")

	var gotUserID uuid.UUID
	var gotRole entity.Role
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = GetUserIDFromContext(r.Context())
		gotRole, _ = GetRoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/machines", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	authMiddleware.Authenticate(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, gotUserID)
	assert.Equal(t, entity.RoleClinic, gotRole)
}

func TestAuthenticate_RevokedToken(t *testing.T) {
	jwtService, _, authMiddleware := newAuthFixture(t)

	// Token never stored in Redis: treated as revoked.
	token, _, err := jwtService.GenerateAccessToken(uuid.New(), "clinic@example.com", entity.RoleClinic)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/machines", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	authMiddleware.Authenticate(nextShouldNotRun(t)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_RefreshTokenRejected(t *testing.T) {
	jwtService, mr, authMiddleware := newAuthFixture(t)
	userID := uuid.New()

	token, tokenID, err := jwtService.GenerateRefreshToken(userID, "clinic@example.com", entity.RoleClinic)
	require.NoError(t, err)
	mr.Set(fmt.Sprintf("access_token:%s:%s", userID, tokenID), "valid")

	req := httptest.NewRequest(http.MethodGet, "/machines", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	authMiddleware.Authenticate(nextShouldNotRun(t)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_MalformedHeaders(t *testing.T) {
	_, _, authMiddleware := newAuthFixture(t)

	testCases := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "no bearer prefix", header: "sometoken"},
		{name: "wrong scheme", header: "Basic sometoken"},
		{name: "garbage token", header: "Bearer not-a-jwt"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/machines", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			authMiddleware.Authenticate(nextShouldNotRun(t)).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAuthenticate_TamperedToken(t *testing.T) {
	jwtService, mr, authMiddleware := newAuthFixture(t)
	userID := uuid.New()

	token, tokenID, err := jwtService.GenerateAccessToken(userID, "clinic@example.com", entity.RoleClinic)
	require.NoError(t, err)
	mr.Set(fmt.Sprintf("access_token:%s:%s", userID, tokenID), "valid")

	req := httptest.NewRequest(http.MethodGet, "/machines", nil)
	req.Header.Set("Authorization", "Bearer "+token+"x")
	rec := httptest.NewRecorder()
	authMiddleware.Authenticate(nextShouldNotRun(t)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func nextShouldNotRun(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not have been called")
	})
}
