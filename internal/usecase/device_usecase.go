// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"mesa/internal/domain/entity"
)

// RegisterDeviceInput defines the data required to register a device for
// push notifications.
type RegisterDeviceInput struct {
	FCMToken string
	DeviceID string
	Platform string
}

// DeviceUsecase defines the interface for push-notification device management.
type DeviceUsecase interface {
	// RegisterDevice records (or refreshes) a device token for the caller.
	// Registration is idempotent per (user, device) pair.
	RegisterDevice(ctx context.Context, caller Caller, input RegisterDeviceInput) (*entity.UserDevice, error)

	// ListDevices retrieves the caller's active devices.
	ListDevices(ctx context.Context, caller Caller) ([]*entity.UserDevice, error)
}
