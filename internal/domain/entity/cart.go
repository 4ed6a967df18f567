// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// Cart is the caller-supplied, unpersisted list of desired menu items
// submitted at order-creation time. It is never stored as its own record;
// it only exists long enough to be priced and snapshotted.
type Cart []CartItem

// CartItem is one requested menu item with its customization references.
type CartItem struct {
	MenuItemID     uuid.UUID           `json:"menu_item_id"`
	Quantity       int                 `json:"quantity"`
	Customizations []CartCustomization `json:"customizations"`
}

// CartCustomization is one requested customization within a cart item.
type CartCustomization struct {
	CustomizationID uuid.UUID `json:"customization_id"`
	Quantity        int       `json:"quantity"`
}
