package models

import "time"

// CartItem is one cart line. A user holds at most one line per product;
// adding the same product again merges quantities instead of duplicating rows.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_cart_user_product" json:"userId"`
	ProductID uint      `gorm:"uniqueIndex:idx_cart_user_product" json:"productId"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
