package impl

import (
	"context"
	"testing"
	"time"

	"mesa/internal/domain/entity"
	mockRepo "mesa/internal/mocks/repository"
	"mesa/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDeviceService(t *testing.T) (usecase.DeviceUsecase, *mockRepo.MockDeviceRepository) {
	t.Helper()

	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(DeviceServiceParams{
		DeviceRepo: deviceRepo,
		Logger:     newDiscardLogger(),
	})

	return service, deviceRepo
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	service, deviceRepo := newDeviceService(t)

	ctx := context.Background()
	caller := customerCaller()

	deviceRepo.EXPECT().FindDevicesByUser(ctx, caller.UserID).Return(nil, nil)
	deviceRepo.EXPECT().
		CreateDevice(ctx, mock.MatchedBy(func(d *entity.UserDevice) bool {
			return d.UserID == caller.UserID && d.FCMToken == "fcm-token-1" && d.IsActive
		})).
		Return(nil)

	device, err := service.RegisterDevice(ctx, caller, usecase.RegisterDeviceInput{
		FCMToken: "fcm-token-1",
		DeviceID: "pixel-8",
		Platform: "android",
	})
	require.NoError(t, err)
	assert.Equal(t, caller.UserID, device.UserID)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_RefreshesExistingToken(t *testing.T) {
	service, deviceRepo := newDeviceService(t)

	ctx := context.Background()
	caller := customerCaller()

	existing := &entity.UserDevice{
		ID:        uuid.New(),
		UserID:    caller.UserID,
		FCMToken:  "fcm-token-old",
		DeviceID:  "pixel-8",
		Platform:  "android",
		IsActive:  true,
		CreatedAt: time.Now().Add(-time.Hour),
		UpdatedAt: time.Now().Add(-time.Hour),
	}

	deviceRepo.EXPECT().FindDevicesByUser(ctx, caller.UserID).Return([]*entity.UserDevice{existing}, nil)
	deviceRepo.EXPECT().UpdateFCMToken(ctx, existing.ID, "fcm-token-new").Return(nil)

	device, err := service.RegisterDevice(ctx, caller, usecase.RegisterDeviceInput{
		FCMToken: "fcm-token-new",
		DeviceID: "pixel-8",
		Platform: "android",
	})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, device.ID)
	assert.Equal(t, "fcm-token-new", device.FCMToken)

	deviceRepo.AssertNotCalled(t, "CreateDevice")
}

func TestDeviceService_ListDevices(t *testing.T) {
	service, deviceRepo := newDeviceService(t)

	ctx := context.Background()
	caller := customerCaller()

	devices := []*entity.UserDevice{
		{ID: uuid.New(), UserID: caller.UserID, DeviceID: "pixel-8", IsActive: true},
	}
	deviceRepo.EXPECT().FindDevicesByUser(ctx, caller.UserID).Return(devices, nil)

	got, err := service.ListDevices(ctx, caller)
	require.NoError(t, err)
	assert.Equal(t, devices, got)
}
