// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"mesa/internal/domain/entity"
	"mesa/internal/errors"

	"github.com/google/uuid"
)

// ErrRefreshTokenNotFound is returned when a refresh token is not found.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines the operations for stored login sessions.
type RefreshTokenRepository interface {
	// CreateRefreshToken persists a new refresh token record.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByHash retrieves a refresh token by its SHA-256 hash.
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteRefreshToken removes a refresh token by its ID.
	DeleteRefreshToken(ctx context.Context, id uuid.UUID) error

	// DeleteRefreshTokensByUser removes all refresh tokens for a user.
	DeleteRefreshTokensByUser(ctx context.Context, userID uuid.UUID) error
}
