// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "mesa/internal/delivery/context"
	"mesa/internal/domain/entity"
	domainerrors "mesa/internal/domain/errors"
	"mesa/internal/domain/repository"
	"mesa/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Logger     *slog.Logger
}

// NewDeviceService is the constructor for deviceService.
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterDevice records (or refreshes) a device token for the caller.
// If the same device ID is already registered, only its FCM token is updated.
func (srv *deviceService) RegisterDevice(ctx context.Context, caller usecase.Caller, input usecase.RegisterDeviceInput) (*entity.UserDevice, error) {
	devices, err := srv.deviceRepo.FindDevicesByUser(ctx, caller.UserID)
	if err != nil {
		srv.log(ctx).Error("Failed to list devices", slog.Any("error", err))

		return nil, domainerrors.ErrPersistenceFailed
	}

	for _, device := range devices {
		if device.DeviceID != input.DeviceID {
			continue
		}

		if err := srv.deviceRepo.UpdateFCMToken(ctx, device.ID, input.FCMToken); err != nil {
			srv.log(ctx).Error("Failed to refresh device token", slog.Any("error", err))

			return nil, domainerrors.ErrPersistenceFailed
		}

		device.FCMToken = input.FCMToken
		device.UpdatedAt = time.Now()

		return device, nil
	}

	now := time.Now()
	device := &entity.UserDevice{
		ID:        uuid.New(),
		UserID:    caller.UserID,
		FCMToken:  input.FCMToken,
		DeviceID:  input.DeviceID,
		Platform:  input.Platform,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := srv.deviceRepo.CreateDevice(ctx, device); err != nil {
		srv.log(ctx).Error("Failed to register device", slog.Any("error", err))

		return nil, domainerrors.ErrPersistenceFailed
	}

	srv.log(ctx).Info("Device registered",
		slog.String("user_id", caller.UserID.String()),
		slog.String("platform", device.Platform))

	return device, nil
}

// ListDevices retrieves the caller's active devices.
func (srv *deviceService) ListDevices(ctx context.Context, caller usecase.Caller) ([]*entity.UserDevice, error) {
	devices, err := srv.deviceRepo.FindDevicesByUser(ctx, caller.UserID)
	if err != nil {
		srv.log(ctx).Error("Failed to list devices", slog.Any("error", err))

		return nil, domainerrors.ErrPersistenceFailed
	}

	return devices, nil
}
