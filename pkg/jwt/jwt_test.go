package jwt

import (
	"testing"
	"time"

	"medequip-rental-backend/config"
	"medequip-rental-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  time.Minute,
		RefreshExpiry: time.Hour,
	})
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	service := newTestService()
	userID := uuid.New()

	token, tokenID, err := service.GenerateAccessToken(userID, "clinic@example.com", entity.RoleClinic)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, tokenID)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "clinic@example.com", claims.Email)
	assert.Equal(t, entity.RoleClinic, claims.Role)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestRefreshTokenCarriesType(t *testing.T) {
	service := newTestService()

	token, _, err := service.GenerateRefreshToken(uuid.New(), "admin@example.com", entity.RoleAdmin)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, RefreshToken, claims.TokenType)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	service := newTestService()
	other := NewJWTService(config.JWTConfig{Secret: "other-secret", AccessExpiry: time.Minute})

	token, _, err := service.GenerateAccessToken(uuid.New(), "clinic@example.com", entity.RoleClinic)
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	service := NewJWTService(config.JWTConfig{
		Secret:       "test-secret",
		AccessExpiry: -time.Minute,
	})

	token, _, err := service.GenerateAccessToken(uuid.New(), "clinic@example.com", entity.RoleClinic)
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func TestTokenIDsAreUnique(t *testing.T) {
	service := newTestService()
	userID := uuid.New()

	_, first, err := service.GenerateAccessToken(userID, "clinic@example.com", entity.RoleClinic)
	require.NoError(t, err)
	_, second, err := service.GenerateAccessToken(userID, "clinic@example.com", entity.RoleClinic)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
