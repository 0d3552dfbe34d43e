package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	// Orders are created already shipped; there is no pending state.
	OrderStatusShipped  OrderStatus = "SHIPPED"
	OrderStatusReceived OrderStatus = "RECEIVED"
)

type Order struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	UserID     uint        `gorm:"not null;index" json:"userId"`
	User       User        `gorm:"foreignKey:UserID" json:"user"`
	Status     OrderStatus `gorm:"type:VARCHAR(20);not null" json:"status"`
	Items      []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt  time.Time   `json:"createdAt"`
	ShippedAt  time.Time   `json:"shippedAt"`
	ReceivedAt *time.Time  `json:"receivedAt"`
}

// OrderItem snapshots price and seller at purchase time; later edits to the
// product never touch these rows.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"index;not null" json:"-"`
	ProductID uint            `gorm:"not null" json:"productId"`
	Product   Product         `gorm:"foreignKey:ProductID" json:"product"`
	SellerID  uint            `gorm:"not null;index" json:"sellerId"`
	Seller    User            `gorm:"foreignKey:SellerID" json:"seller"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price"`
}
