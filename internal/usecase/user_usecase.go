// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"mesa/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new customer account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// CreateStaffInput defines the data required for an admin to provision a
// staff account (waiter, kitchen, or another admin).
type CreateStaffInput struct {
	Name     string
	Email    string
	Password string
	Role     entity.Role
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the generated token pair after a successful
// login, registration, or refresh.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// UserUsecase defines the interface for account and session operations.
type UserUsecase interface {
	// Register creates a new customer account and logs it in.
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)

	// CreateStaff provisions a staff account. Restricted to admins.
	CreateStaff(ctx context.Context, caller Caller, input CreateStaffInput) (*entity.User, error)

	// Login verifies credentials and issues a token pair.
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)

	// Refresh rotates a valid refresh token into a new token pair.
	Refresh(ctx context.Context, refreshToken string) (*AuthOutput, error)

	// Logout revokes the session behind the given refresh token.
	Logout(ctx context.Context, refreshToken string) error

	// GetProfile retrieves the caller's own account.
	GetProfile(ctx context.Context, caller Caller) (*entity.User, error)
}
