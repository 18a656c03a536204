package model

import (
	"time"

	"github.com/google/uuid"
)

// CartItemModel mirrors the 'cart_items' table. The unique index on
// (user_id, menu_item_id) enforces one line per item; repeated adds go
// through the merge path in the cart use case instead.
type CartItemModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_cart_user_menu_item"`
	MenuItemID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_cart_user_menu_item"`
	Quantity   int       `gorm:"not null;check:quantity >= 1"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
