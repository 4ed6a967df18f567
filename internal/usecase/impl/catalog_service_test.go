package impl

import (
	"context"
	"testing"

	"mesa/internal/domain/entity"
	domainerrors "mesa/internal/domain/errors"
	"mesa/internal/domain/repository"
	mockRepo "mesa/internal/mocks/repository"
	mockSvc "mesa/internal/mocks/service"
	"mesa/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalogService(t *testing.T) (usecase.CatalogUsecase, *mockRepo.MockCatalogRepository, *mockSvc.MockQRCodeService) {
	t.Helper()

	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)

	service := NewCatalogService(CatalogServiceParams{
		CatalogRepo:   catalogRepo,
		QRCodeService: qrcodeService,
		Logger:        newDiscardLogger(),
	})

	return service, catalogRepo, qrcodeService
}

func adminCaller() usecase.Caller {
	return usecase.Caller{UserID: uuid.New(), Email: "admin@example.com", Role: entity.RoleAdmin}
}

func TestCatalogService_CreateLocation_RequiresAdmin(t *testing.T) {
	service, _, _ := newCatalogService(t)

	location, err := service.CreateLocation(context.Background(), customerCaller(), usecase.CreateLocationInput{
		Name:    "Downtown",
		Address: "1 Main St",
	})
	assert.Nil(t, location)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCatalogService_CreateLocation_Success(t *testing.T) {
	service, catalogRepo, _ := newCatalogService(t)

	ctx := context.Background()

	catalogRepo.EXPECT().
		CreateLocation(ctx, mock.MatchedBy(func(l *entity.Location) bool {
			return l.Name == "Downtown" && l.IsActive
		})).
		Return(nil)

	location, err := service.CreateLocation(ctx, adminCaller(), usecase.CreateLocationInput{
		Name:    "Downtown",
		Address: "1 Main St",
	})
	require.NoError(t, err)
	assert.True(t, location.IsActive)
	assert.NotEqual(t, uuid.Nil, location.ID)
}

func TestCatalogService_UpdateLocation_CanDeactivate(t *testing.T) {
	service, catalogRepo, _ := newCatalogService(t)

	ctx := context.Background()
	existing := newActiveLocation()

	catalogRepo.EXPECT().GetLocation(ctx, existing.ID).Return(existing, nil)
	catalogRepo.EXPECT().
		UpdateLocation(ctx, mock.MatchedBy(func(l *entity.Location) bool {
			return l.ID == existing.ID && !l.IsActive
		})).
		Return(nil)

	location, err := service.UpdateLocation(ctx, adminCaller(), usecase.UpdateLocationInput{
		LocationID: existing.ID,
		Name:       existing.Name,
		Address:    existing.Address,
		IsActive:   false,
	})
	require.NoError(t, err)
	assert.False(t, location.IsActive)
}

func TestCatalogService_CreateMenuItem_UnknownLocation(t *testing.T) {
	service, catalogRepo, _ := newCatalogService(t)

	ctx := context.Background()
	locationID := uuid.New()

	catalogRepo.EXPECT().GetLocation(ctx, locationID).Return(nil, repository.ErrLocationNotFound)

	item, err := service.CreateMenuItem(ctx, adminCaller(), usecase.CreateMenuItemInput{
		LocationID: locationID,
		Name:       "Cheeseburger",
		Category:   "mains",
		Price:      decimal.RequireFromString("10.00"),
	})
	assert.Nil(t, item)
	assert.ErrorIs(t, err, domainerrors.ErrLocationNotFound)
}

func TestCatalogService_CreateMenuItem_Success(t *testing.T) {
	service, catalogRepo, _ := newCatalogService(t)

	ctx := context.Background()
	location := newActiveLocation()

	catalogRepo.EXPECT().GetLocation(ctx, location.ID).Return(location, nil)
	catalogRepo.EXPECT().
		CreateMenuItem(ctx, mock.MatchedBy(func(i *entity.MenuItem) bool {
			return i.LocationID == location.ID && i.IsAvailable
		})).
		Return(nil)

	item, err := service.CreateMenuItem(ctx, adminCaller(), usecase.CreateMenuItemInput{
		LocationID: location.ID,
		Name:       "Cheeseburger",
		Category:   "mains",
		Price:      decimal.RequireFromString("10.00"),
	})
	require.NoError(t, err)
	assert.True(t, item.IsAvailable)
}

func TestCatalogService_GetMenu_BundlesCustomizations(t *testing.T) {
	service, catalogRepo, _ := newCatalogService(t)

	ctx := context.Background()
	location := newActiveLocation()
	item := newAvailableMenuItem(location.ID, "10.00")
	cheese := newCustomization(item.ID, "1.00")

	catalogRepo.EXPECT().GetLocation(ctx, location.ID).Return(location, nil)
	catalogRepo.EXPECT().ListMenuItems(ctx, location.ID).Return([]*entity.MenuItem{item}, nil)
	catalogRepo.EXPECT().ListCustomizations(ctx, item.ID).Return([]*entity.Customization{cheese}, nil)

	menu, err := service.GetMenu(ctx, location.ID)
	require.NoError(t, err)
	require.Len(t, menu, 1)
	assert.Equal(t, item.ID, menu[0].ID)
	require.Len(t, menu[0].Customizations, 1)
	assert.Equal(t, cheese.ID, menu[0].Customizations[0].ID)
}

func TestCatalogService_GetMenu_InactiveLocation(t *testing.T) {
	service, catalogRepo, _ := newCatalogService(t)

	ctx := context.Background()
	location := newActiveLocation()
	location.IsActive = false

	catalogRepo.EXPECT().GetLocation(ctx, location.ID).Return(location, nil)

	menu, err := service.GetMenu(ctx, location.ID)
	assert.Nil(t, menu)
	assert.ErrorIs(t, err, domainerrors.ErrLocationNotFound)
}

func TestCatalogService_GenerateMenuQR(t *testing.T) {
	service, catalogRepo, qrcodeService := newCatalogService(t)

	ctx := context.Background()
	location := newActiveLocation()

	catalogRepo.EXPECT().GetLocation(ctx, location.ID).Return(location, nil)
	qrcodeService.EXPECT().GenerateMenuQR(location.ID).Return([]byte("png-bytes"), nil)

	png, err := service.GenerateMenuQR(ctx, location.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}
