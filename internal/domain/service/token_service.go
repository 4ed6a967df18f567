package service

import (
	"time"

	"mesa/internal/domain/entity"

	"github.com/google/uuid"
)

// Token type discriminators carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims is the verified identity extracted from a bearer token.
type Claims struct {
	UserID uuid.UUID
	Email  string
	Role   entity.Role
	Type   string
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given user.
	GenerateTokens(user *entity.User) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken checks a refresh token and returns its claims.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// RefreshTokenDuration returns the configured duration for refresh tokens.
	RefreshTokenDuration() time.Duration
}
