// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"mesa/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceRepository defines the operations for push-notification device records.
type DeviceRepository interface {
	// CreateDevice persists a new device registration.
	CreateDevice(ctx context.Context, device *entity.UserDevice) error

	// FindDevicesByUser retrieves all active devices for a user.
	FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// UpdateFCMToken replaces the FCM token for an existing device.
	UpdateFCMToken(ctx context.Context, id uuid.UUID, fcmToken string) error

	// DeactivateByTokens marks devices with the given FCM tokens inactive.
	// Used to clean up tokens the push provider reports as invalid.
	DeactivateByTokens(ctx context.Context, fcmTokens []string) error
}
