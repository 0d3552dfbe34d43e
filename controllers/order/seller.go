package orderControllers

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Mercurial-spe/shop/models"
)

// SellerOrderItem is the flattened row a seller sees for each sold item.
// Order items carry only the order id back-reference, so the order and buyer
// columns are joined in rather than preloaded.
type SellerOrderItem struct {
	OrderID        uint               `json:"orderId"`
	OrderStatus    models.OrderStatus `json:"orderStatus"`
	OrderCreatedAt time.Time          `json:"orderCreatedAt"`
	ProductID      uint               `json:"productId"`
	ProductName    string             `json:"productName"`
	Quantity       int                `json:"quantity"`
	Price          decimal.Decimal    `json:"price"`
	BuyerID        uint               `json:"buyerId"`
	BuyerName      string             `json:"buyerName"`
}

// SellerStats aggregates a seller's sales from the order item snapshots.
type SellerStats struct {
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	TotalOrders  int             `json:"totalOrders"`
	TotalUnits   int             `json:"totalUnits"`
	ProductSales map[string]int  `json:"productSales"`
}

func resolveSeller(db *gorm.DB, sellerID uint) error {
	var seller models.User
	if err := db.First(&seller, sellerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrSellerNotFound
		}
		return err
	}
	return nil
}

func sellerRows(db *gorm.DB, sellerID uint) ([]SellerOrderItem, error) {
	if err := resolveSeller(db, sellerID); err != nil {
		return nil, err
	}

	var rows []SellerOrderItem
	if err := db.Table("order_items").
		Select(`order_items.order_id,
			orders.status AS order_status,
			orders.created_at AS order_created_at,
			order_items.product_id,
			products.name AS product_name,
			order_items.quantity,
			order_items.price,
			orders.user_id AS buyer_id,
			users.username AS buyer_name`).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN products ON products.id = order_items.product_id").
		Joins("JOIN users ON users.id = orders.user_id").
		Where("order_items.seller_id = ?", sellerID).
		Order("order_items.id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetOrdersBySeller lists every order item whose snapshot seller matches.
func GetOrdersBySeller(db *gorm.DB, sellerID uint) ([]SellerOrderItem, error) {
	return sellerRows(db, sellerID)
}

// GetSellerStats computes revenue, distinct orders, units and per-product unit
// sales. Pure read; prices come from the snapshots, not the live products.
func GetSellerStats(db *gorm.DB, sellerID uint) (*SellerStats, error) {
	rows, err := sellerRows(db, sellerID)
	if err != nil {
		return nil, err
	}

	stats := SellerStats{
		TotalRevenue: decimal.Zero,
		ProductSales: make(map[string]int),
	}
	orderIDs := make(map[uint]struct{})

	for _, row := range rows {
		qty := decimal.NewFromInt(int64(row.Quantity))
		stats.TotalRevenue = stats.TotalRevenue.Add(row.Price.Mul(qty))
		stats.TotalUnits += row.Quantity
		stats.ProductSales[row.ProductName] += row.Quantity
		orderIDs[row.OrderID] = struct{}{}
	}
	stats.TotalOrders = len(orderIDs)

	return &stats, nil
}
