package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table. Orders are never deleted; terminal
// states (COMPLETED, CANCELLED) end the lifecycle instead.
type OrderModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	LocationID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status     string          `gorm:"type:varchar(20);not null;index"`
	Total      decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CreatedAt  time.Time       `gorm:"index"`
	UpdatedAt  time.Time

	Lines []OrderLineModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderLineModel mirrors the 'order_lines' table. PriceAtTime is the
// snapshot taken at order creation and never tracks the live catalog.
type OrderLineModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	MenuItemID  uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity    int             `gorm:"not null"`
	PriceAtTime decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CreatedAt   time.Time

	MenuItem       *MenuItemModel               `gorm:"foreignKey:MenuItemID"`
	Customizations []OrderLineCustomizationModel `gorm:"foreignKey:OrderLineID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderLineModel) TableName() string {
	return "order_lines"
}

// OrderLineCustomizationModel mirrors the 'order_line_customizations' table.
type OrderLineCustomizationModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderLineID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	CustomizationID uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity        int             `gorm:"not null"`
	PriceAtTime     decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CreatedAt       time.Time

	Customization *CustomizationModel `gorm:"foreignKey:CustomizationID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderLineCustomizationModel) TableName() string {
	return "order_line_customizations"
}
