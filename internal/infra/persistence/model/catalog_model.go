package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LocationModel mirrors the 'locations' table.
type LocationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Address   string    `gorm:"type:varchar(255);not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time

	MenuItems []MenuItemModel `gorm:"foreignKey:LocationID"`
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}

// MenuItemModel mirrors the 'menu_items' table. Price is the live catalog
// price; order lines keep their own snapshot copies.
type MenuItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	LocationID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name        string          `gorm:"type:varchar(100);not null"`
	Description string          `gorm:"type:text"`
	Category    string          `gorm:"type:varchar(50);not null;index"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	IsAvailable bool            `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Customizations []CustomizationModel `gorm:"foreignKey:MenuItemID"`
}

// TableName explicitly sets the table name for GORM.
func (MenuItemModel) TableName() string {
	return "menu_items"
}

// CustomizationModel mirrors the 'customizations' table.
type CustomizationModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MenuItemID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name       string          `gorm:"type:varchar(100);not null"`
	Price      decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomizationModel) TableName() string {
	return "customizations"
}
