// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"mesa/internal/domain/entity"
	"mesa/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when creating a user whose email is taken.
	ErrDuplicateUser = errors.New("user already exists")
)

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// AddLoyaltyPoints atomically increments a user's loyalty point balance.
	AddLoyaltyPoints(ctx context.Context, id uuid.UUID, points int) error
}
