package auth

import (
	"testing"
	"time"

	"mesa/config"
	"mesa/internal/domain/entity"
	"mesa/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func newTestUser() *entity.User {
	return &entity.User{
		ID:    uuid.New(),
		Name:  "Test User",
		Email: "user@example.com",
		Role:  entity.RoleCustomer,
	}
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	user := newTestUser()

	accessToken, refreshToken, err := jwtService.GenerateTokens(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	// Validate access token
	accessClaims, err := jwtService.ValidateAccessToken(accessToken)
	assert.NoError(t, err)
	require.NotNil(t, accessClaims)
	assert.Equal(t, user.ID, accessClaims.UserID)
	assert.Equal(t, user.Email, accessClaims.Email)
	assert.Equal(t, user.Role, accessClaims.Role)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)

	// Validate refresh token
	refreshClaims, err := jwtService.ValidateRefreshToken(refreshToken)
	assert.NoError(t, err)
	require.NotNil(t, refreshClaims)
	assert.Equal(t, user.ID, refreshClaims.UserID)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
}

func TestJWTService_TokenTypeIsEnforced(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	accessToken, refreshToken, err := jwtService.GenerateTokens(newTestUser())
	require.NoError(t, err)

	// A refresh token must not pass access validation, and vice versa.
	claims, err := jwtService.ValidateAccessToken(refreshToken)
	assert.Error(t, err)
	assert.Nil(t, claims)

	claims, err = jwtService.ValidateRefreshToken(accessToken)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	claims, err := jwtService.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	otherCfg := newTestConfig()
	otherCfg.SecretKey.Access = "a_completely_different_access_secret"
	otherService, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	accessToken, _, err := jwtService.GenerateTokens(newTestUser())
	require.NoError(t, err)

	claims, err := otherService.ValidateAccessToken(accessToken)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_MissingSecrets(t *testing.T) {
	cfg := &config.Config{}
	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
}

func TestJWTService_RefreshTokenDuration(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	assert.Equal(t, time.Hour*24*7, jwtService.RefreshTokenDuration())
}
