// Package pricing computes an order's authoritative total from a cart and
// the current catalog. It is a pure function of its inputs: no persistence,
// no mutation, only a priced draft or a typed rejection.
package pricing

import (
	"context"

	"mesa/internal/domain/entity"
	"mesa/internal/domain/repository"
	"mesa/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Typed rejections. Callers branch on these with errors.Is; any other error
// is a catalog read failure.
var (
	// ErrEmptyCart is returned when the cart has no entries.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInvalidQuantity is returned when any quantity is below 1.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	// ErrItemNotFound is returned when a cart entry references an unknown menu item.
	ErrItemNotFound = errors.New("menu item not found")
	// ErrItemUnavailable is returned when a referenced menu item is not available.
	ErrItemUnavailable = errors.New("menu item unavailable")
	// ErrLocationMismatch is returned when a referenced menu item belongs to another location.
	ErrLocationMismatch = errors.New("menu item belongs to a different location")
	// ErrCustomizationNotFound is returned when a customization reference is unknown.
	ErrCustomizationNotFound = errors.New("customization not found")
)

// PricedCustomization is one customization reference with its snapshot price.
type PricedCustomization struct {
	Customization *entity.Customization
	Quantity      int
	UnitPrice     decimal.Decimal
}

// PricedLine is one cart entry with resolved item and snapshot prices.
type PricedLine struct {
	MenuItem       *entity.MenuItem
	Quantity       int
	UnitPrice      decimal.Decimal
	Customizations []PricedCustomization
	LineTotal      decimal.Decimal
}

// PricedOrder is the immutable priced draft: a cart annotated with snapshot
// prices for every line and customization, ready for atomic persistence.
type PricedOrder struct {
	LocationID uuid.UUID
	Lines      []PricedLine
	Total      decimal.Decimal
}

// PriceCart validates the cart against the catalog and produces a priced
// draft for the target location.
//
// Line total = unitPrice*qty + (sum of customizationUnitPrice*custQty)*qty;
// the order total is the sum of all line totals. A customization is resolved
// by id only; the engine does not verify it belongs to the referenced menu
// item (tightening that is a deliberate behavior change).
func PriceCart(ctx context.Context, catalog repository.CatalogReader, location *entity.Location, cart entity.Cart) (*PricedOrder, error) {
	if len(cart) == 0 {
		return nil, errors.WithStack(ErrEmptyCart)
	}

	draft := &PricedOrder{
		LocationID: location.ID,
		Lines:      make([]PricedLine, 0, len(cart)),
		Total:      decimal.Zero,
	}

	for _, entry := range cart {
		line, err := priceLine(ctx, catalog, location, entry)
		if err != nil {
			return nil, err
		}

		draft.Lines = append(draft.Lines, *line)
		draft.Total = draft.Total.Add(line.LineTotal)
	}

	return draft, nil
}

// priceLine resolves and prices a single cart entry.
func priceLine(ctx context.Context, catalog repository.CatalogReader, location *entity.Location, entry entity.CartItem) (*PricedLine, error) {
	if entry.Quantity < 1 {
		return nil, errors.Wrapf(ErrInvalidQuantity, "menu item %s", entry.MenuItemID)
	}

	item, err := catalog.GetMenuItem(ctx, entry.MenuItemID)
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return nil, errors.Wrapf(ErrItemNotFound, "menu item %s", entry.MenuItemID)
		}

		return nil, errors.Wrap(err, "failed to resolve menu item")
	}

	if !item.IsAvailable {
		return nil, errors.Wrapf(ErrItemUnavailable, "menu item %s", item.ID)
	}

	if item.LocationID != location.ID {
		return nil, errors.Wrapf(ErrLocationMismatch, "menu item %s belongs to location %s", item.ID, item.LocationID)
	}

	line := &PricedLine{
		MenuItem:       item,
		Quantity:       entry.Quantity,
		UnitPrice:      item.Price,
		Customizations: make([]PricedCustomization, 0, len(entry.Customizations)),
	}

	qty := decimal.NewFromInt(int64(entry.Quantity))
	custSum := decimal.Zero

	for _, ref := range entry.Customizations {
		if ref.Quantity < 1 {
			return nil, errors.Wrapf(ErrInvalidQuantity, "customization %s", ref.CustomizationID)
		}

		customization, err := catalog.GetCustomization(ctx, ref.CustomizationID)
		if err != nil {
			if errors.Is(err, repository.ErrCustomizationNotFound) {
				return nil, errors.Wrapf(ErrCustomizationNotFound, "customization %s", ref.CustomizationID)
			}

			return nil, errors.Wrap(err, "failed to resolve customization")
		}

		line.Customizations = append(line.Customizations, PricedCustomization{
			Customization: customization,
			Quantity:      ref.Quantity,
			UnitPrice:     customization.Price,
		})
		custSum = custSum.Add(customization.Price.Mul(decimal.NewFromInt(int64(ref.Quantity))))
	}

	line.LineTotal = line.UnitPrice.Mul(qty).Add(custSum.Mul(qty))

	return line, nil
}
