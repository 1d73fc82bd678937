package usecase

import (
	"context"
	"fmt"
	"regexp"
	"testing"
	"time"

	"medequip-rental-backend/config"
	"medequip-rental-backend/internal/delivery/dto"
	"medequip-rental-backend/internal/domain/entity"
	"medequip-rental-backend/internal/repository"
	"medequip-rental-backend/pkg/jwt"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newAuthFixture(t *testing.T) (AuthUsecase, sqlmock.Sqlmock, *miniredis.Miniredis, *jwt.JWTService) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)

	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  time.Minute,
		RefreshExpiry: time.Hour,
	})

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	uc := NewAuthUsecase(gormDB, testLogger(), repository.NewUserRepository(), repository.NewUserRoleRepository(), jwtService, redisClient)
	return uc, mock, mr, jwtService
}

func hashPassword(t *testing.T, password string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hashed)
}

func expectUserByEmail(mock sqlmock.Sqlmock, userID uuid.UUID, email, passwordHash string) {
	rows := sqlmock.NewRows([]string{"id", "email", "password", "full_name"}).
		AddRow(userID.String(), email, passwordHash, "City Clinic")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).WillReturnRows(rows)
}

func expectRole(mock sqlmock.Sqlmock, userID uuid.UUID, role entity.Role) {
	rows := sqlmock.NewRows([]string{"user_id", "role"}).
		AddRow(userID.String(), string(role))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "user_roles"`)).WillReturnRows(rows)
}

func TestLogin_Success(t *testing.T) {
	uc, mock, mr, jwtService := newAuthFixture(t)
	userID := uuid.New()
	hash := hashPassword(t, "password123")

	expectUserByEmail(mock, userID, "clinic@example.com", hash)
	expectRole(mock, userID, entity.RoleClinic)

	tokens, err := uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "clinic@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, tokens.AccessToken)
	require.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, int64(60), tokens.ExpiresIn)

	// Access token carries the resolved role and is stored in Redis.
	claims, err := jwtService.ValidateToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleClinic, claims.Role)
	assert.True(t, mr.Exists(fmt.Sprintf("access_token:%s:%s", userID, claims.TokenID)))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, mock, _, _ := newAuthFixture(t)
	userID := uuid.New()

	expectUserByEmail(mock, userID, "clinic@example.com", hashPassword(t, "password123"))

	_, err := uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "clinic@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	uc, mock, _, _ := newAuthFixture(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_NoRoleAssignmentFailsOpen(t *testing.T) {
	uc, mock, _, jwtService := newAuthFixture(t)
	userID := uuid.New()

	expectUserByEmail(mock, userID, "clinic@example.com", hashPassword(t, "password123"))
	// No role row: the token carries an empty role and route guards deny.
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "user_roles"`)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	tokens, err := uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "clinic@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, entity.Role(""), claims.Role)
}

func TestRefreshToken_RevokedToken(t *testing.T) {
	uc, _, _, jwtService := newAuthFixture(t)

	// A refresh token that was never stored (or already rotated) is refused.
	token, _, err := jwtService.GenerateRefreshToken(uuid.New(), "clinic@example.com", entity.RoleClinic)
	require.NoError(t, err)

	_, err = uc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: token})
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

func TestRefreshToken_RejectsAccessToken(t *testing.T) {
	uc, _, _, jwtService := newAuthFixture(t)

	token, _, err := jwtService.GenerateAccessToken(uuid.New(), "clinic@example.com", entity.RoleClinic)
	require.NoError(t, err)

	_, err = uc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: token})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshToken_RotatesStoredToken(t *testing.T) {
	uc, mock, mr, jwtService := newAuthFixture(t)
	userID := uuid.New()

	token, tokenID, err := jwtService.GenerateRefreshToken(userID, "clinic@example.com", entity.RoleClinic)
	require.NoError(t, err)
	oldKey := fmt.Sprintf("refresh_token:%s:%s", userID, tokenID)
	mr.Set(oldKey, "valid")

	expectRole(mock, userID, entity.RoleClinic)

	tokens, err := uc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: token})
	require.NoError(t, err)
	require.NotEmpty(t, tokens.AccessToken)

	// The old refresh token is gone; replaying it fails.
	assert.False(t, mr.Exists(oldKey))
	_, err = uc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: token})
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

func TestGetCurrentUser_ResolvesRole(t *testing.T) {
	uc, mock, _, _ := newAuthFixture(t)
	userID := uuid.New()

	expectUserByEmail(mock, userID, "admin@example.com", "irrelevant")
	expectRole(mock, userID, entity.RoleAdmin)

	user, err := uc.GetCurrentUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", user.Email)
	assert.Equal(t, string(entity.RoleAdmin), user.Role)
}

func TestGetCurrentUser_NotFound(t *testing.T) {
	uc, mock, _, _ := newAuthFixture(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := uc.GetCurrentUser(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}
