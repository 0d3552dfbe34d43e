package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices go over the wire as JSON numbers, matching the existing clients.
	decimal.MarshalJSONWithoutQuotes = true
}

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price"`
	ImageURL    string          `json:"imageUrl"`
	// nil means unlimited stock; checkout skips the decrement entirely.
	StockQuantity *int      `json:"stockQuantity"`
	SellerID      uint      `json:"sellerId"`
	Seller        User      `gorm:"foreignKey:SellerID" json:"seller"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
