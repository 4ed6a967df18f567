// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. Role is immutable except by
// administrative action; it determines which order lifecycle operations
// the user may perform.
type User struct {
	ID            uuid.UUID `json:"id"`             // The Global Unique Identifier (GUID) for the user.
	Email         string    `json:"email"`          // The user's primary contact email, used as the login identifier.
	Name          string    `json:"name"`           // The user's display name.
	Role          Role      `json:"role"`           // The user's single role (customer, waiter, kitchen, admin).
	LoyaltyPoints int       `json:"loyalty_points"` // Accumulated loyalty point balance.
	PasswordHash  string    `json:"-"`              // bcrypt hash of the password; never serialized.
	CreatedAt     time.Time `json:"created_at"`     // Timestamp of when this user account was created.
	UpdatedAt     time.Time `json:"updated_at"`     // Timestamp of the last modification to this user's data.
}

// RefreshToken represents a long-lived, authorized user session.
// It is used to obtain a new access token after the old one expires.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this specific refresh token record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // SHA-256 hash of the raw refresh token for secure comparison.
	ExpiresAt time.Time // The exact time when this refresh token becomes invalid.
	CreatedAt time.Time // Timestamp of when this session was created.
}

// UserDevice is a registered push-notification target for a user.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	FCMToken  string    `json:"fcm_token"`
	DeviceID  string    `json:"device_id"`
	Platform  string    `json:"platform"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
