package pricing

import (
	"context"
	"testing"

	"mesa/internal/domain/entity"
	"mesa/internal/domain/repository"
	mockRepo "mesa/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeLocation() *entity.Location {
	return &entity.Location{ID: uuid.New(), Name: "Downtown", IsActive: true}
}

func menuItem(locationID uuid.UUID, price string, available bool) *entity.MenuItem {
	return &entity.MenuItem{
		ID:          uuid.New(),
		LocationID:  locationID,
		Name:        "Margherita",
		Price:       decimal.RequireFromString(price),
		IsAvailable: available,
	}
}

func TestPriceCart_SingleLineWithCustomization(t *testing.T) {
	catalog := mockRepo.NewMockCatalogReader(t)
	location := activeLocation()
	item := menuItem(location.ID, "10.00", true)
	customization := &entity.Customization{
		ID:         uuid.New(),
		MenuItemID: item.ID,
		Name:       "Extra cheese",
		Price:      decimal.RequireFromString("2.00"),
	}

	ctx := context.Background()
	catalog.EXPECT().GetMenuItem(ctx, item.ID).Return(item, nil)
	catalog.EXPECT().GetCustomization(ctx, customization.ID).Return(customization, nil)

	cart := entity.Cart{{
		MenuItemID: item.ID,
		Quantity:   2,
		Customizations: []entity.CartCustomization{
			{CustomizationID: customization.ID, Quantity: 1},
		},
	}}

	draft, err := PriceCart(ctx, catalog, location, cart)
	require.NoError(t, err)

	// 2*10.00 + (1*2.00)*2 = 24.00
	assert.True(t, draft.Total.Equal(decimal.RequireFromString("24.00")), draft.Total.String())
	require.Len(t, draft.Lines, 1)
	assert.True(t, draft.Lines[0].UnitPrice.Equal(item.Price))
	assert.True(t, draft.Lines[0].LineTotal.Equal(decimal.RequireFromString("24.00")))
	require.Len(t, draft.Lines[0].Customizations, 1)
	assert.True(t, draft.Lines[0].Customizations[0].UnitPrice.Equal(customization.Price))
}

func TestPriceCart_MultipleLines(t *testing.T) {
	catalog := mockRepo.NewMockCatalogReader(t)
	location := activeLocation()
	pizza := menuItem(location.ID, "12.50", true)
	cola := menuItem(location.ID, "3.25", true)

	ctx := context.Background()
	catalog.EXPECT().GetMenuItem(ctx, pizza.ID).Return(pizza, nil)
	catalog.EXPECT().GetMenuItem(ctx, cola.ID).Return(cola, nil)

	cart := entity.Cart{
		{MenuItemID: pizza.ID, Quantity: 1},
		{MenuItemID: cola.ID, Quantity: 3},
	}

	draft, err := PriceCart(ctx, catalog, location, cart)
	require.NoError(t, err)

	// 12.50 + 3*3.25 = 22.25
	assert.True(t, draft.Total.Equal(decimal.RequireFromString("22.25")), draft.Total.String())
}

func TestPriceCart_EmptyCart(t *testing.T) {
	catalog := mockRepo.NewMockCatalogReader(t)

	draft, err := PriceCart(context.Background(), catalog, activeLocation(), entity.Cart{})
	assert.Nil(t, draft)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPriceCart_InvalidQuantity(t *testing.T) {
	catalog := mockRepo.NewMockCatalogReader(t)
	location := activeLocation()

	cart := entity.Cart{{MenuItemID: uuid.New(), Quantity: 0}}

	draft, err := PriceCart(context.Background(), catalog, location, cart)
	assert.Nil(t, draft)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestPriceCart_InvalidCustomizationQuantity(t *testing.T) {
	catalog := mockRepo.NewMockCatalogReader(t)
	location := activeLocation()
	item := menuItem(location.ID, "10.00", true)

	ctx := context.Background()
	catalog.EXPECT().GetMenuItem(ctx, item.ID).Return(item, nil)

	cart := entity.Cart{{
		MenuItemID: item.ID,
		Quantity:   1,
		Customizations: []entity.CartCustomization{
			{CustomizationID: uuid.New(), Quantity: 0},
		},
	}}

	draft, err := PriceCart(ctx, catalog, location, cart)
	assert.Nil(t, draft)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestPriceCart_ItemNotFound(t *testing.T) {
	catalog := mockRepo.NewMockCatalogReader(t)
	location := activeLocation()
	missingID := uuid.New()

	ctx := context.Background()
	catalog.EXPECT().GetMenuItem(ctx, missingID).Return(nil, repository.ErrMenuItemNotFound)

	cart := entity.Cart{{MenuItemID: missingID, Quantity: 1}}

	draft, err := PriceCart(ctx, catalog, location, cart)
	assert.Nil(t, draft)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestPriceCart_ItemUnavailable(t *testing.T) {
	catalog := mockRepo.NewMockCatalogReader(t)
	location := activeLocation()
	item := menuItem(location.ID, "10.00", false)

	ctx := context.Background()
	catalog.EXPECT().GetMenuItem(ctx, item.ID).Return(item, nil)

	cart := entity.Cart{{MenuItemID: item.ID, Quantity: 1}}

	draft, err := PriceCart(ctx, catalog, location, cart)
	assert.Nil(t, draft)
	assert.ErrorIs(t, err, ErrItemUnavailable)
}

func TestPriceCart_LocationMismatch(t *testing.T) {
	catalog := mockRepo.NewMockCatalogReader(t)
	location := activeLocation()
	otherLocation := uuid.New()
	item := menuItem(otherLocation, "10.00", true)

	ctx := context.Background()
	catalog.EXPECT().GetMenuItem(ctx, item.ID).Return(item, nil)

	cart := entity.Cart{{MenuItemID: item.ID, Quantity: 2}}

	draft, err := PriceCart(ctx, catalog, location, cart)
	assert.Nil(t, draft)
	assert.ErrorIs(t, err, ErrLocationMismatch)
}

func TestPriceCart_CustomizationNotFound(t *testing.T) {
	catalog := mockRepo.NewMockCatalogReader(t)
	location := activeLocation()
	item := menuItem(location.ID, "10.00", true)
	missingID := uuid.New()

	ctx := context.Background()
	catalog.EXPECT().GetMenuItem(ctx, item.ID).Return(item, nil)
	catalog.EXPECT().GetCustomization(ctx, missingID).Return(nil, repository.ErrCustomizationNotFound)

	cart := entity.Cart{{
		MenuItemID: item.ID,
		Quantity:   1,
		Customizations: []entity.CartCustomization{
			{CustomizationID: missingID, Quantity: 1},
		},
	}}

	draft, err := PriceCart(ctx, catalog, location, cart)
	assert.Nil(t, draft)
	assert.ErrorIs(t, err, ErrCustomizationNotFound)
}

func TestPriceCart_CatalogReadFailure(t *testing.T) {
	catalog := mockRepo.NewMockCatalogReader(t)
	location := activeLocation()
	itemID := uuid.New()

	ctx := context.Background()
	catalog.EXPECT().GetMenuItem(ctx, itemID).Return(nil, errors.New("db error"))

	cart := entity.Cart{{MenuItemID: itemID, Quantity: 1}}

	draft, err := PriceCart(ctx, catalog, location, cart)
	assert.Nil(t, draft)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrItemNotFound)
}

func TestPriceCart_PermissiveCustomizationBinding(t *testing.T) {
	catalog := mockRepo.NewMockCatalogReader(t)
	location := activeLocation()
	item := menuItem(location.ID, "10.00", true)
	// Belongs to a different menu item; the engine accepts it anyway.
	foreign := &entity.Customization{
		ID:         uuid.New(),
		MenuItemID: uuid.New(),
		Name:       "Extra sauce",
		Price:      decimal.RequireFromString("1.00"),
	}

	ctx := context.Background()
	catalog.EXPECT().GetMenuItem(ctx, item.ID).Return(item, nil)
	catalog.EXPECT().GetCustomization(ctx, foreign.ID).Return(foreign, nil)

	cart := entity.Cart{{
		MenuItemID: item.ID,
		Quantity:   1,
		Customizations: []entity.CartCustomization{
			{CustomizationID: foreign.ID, Quantity: 2},
		},
	}}

	draft, err := PriceCart(ctx, catalog, location, cart)
	require.NoError(t, err)
	// 10.00 + (2*1.00)*1 = 12.00
	assert.True(t, draft.Total.Equal(decimal.RequireFromString("12.00")), draft.Total.String())
}
