package models

import "time"

// CartItem is a persisted cart line for an authenticated user. The composite
// unique index guarantees at most one row per (user, product); repeated adds
// increment Quantity instead of inserting duplicates.
type CartItem struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	Product   Product   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product"`
	AddedAt   time.Time `json:"added_at"`
}
