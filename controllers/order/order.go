package orderControllers

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/Mercurial-spe/shop/models"
	"github.com/Mercurial-spe/shop/notify"
)

// manifestLine is one (product, quantity) pair being converted into an order.
type manifestLine struct {
	Product  models.Product
	Quantity int
}

// applyManifest decrements stock for every line and persists a new SHIPPED
// order with per-line price and seller snapshots. It must run inside a
// transaction: the first line that cannot be covered aborts the whole thing,
// so no partial decrement and no half-created order ever commits.
func applyManifest(tx *gorm.DB, userID uint, lines []manifestLine) (*models.Order, error) {
	now := time.Now()
	order := models.Order{
		UserID:    userID,
		Status:    models.OrderStatusShipped,
		CreatedAt: now,
		ShippedAt: now,
	}

	for _, line := range lines {
		if line.Product.StockQuantity != nil {
			// Conditional decrement: the WHERE clause re-checks stock at
			// update time, so concurrent checkouts serialize on the row and
			// the counter can never go negative.
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock_quantity >= ?", line.Product.ID, line.Quantity).
				Update("stock_quantity", gorm.Expr("stock_quantity - ?", line.Quantity))
			if res.Error != nil {
				return nil, res.Error
			}
			if res.RowsAffected == 0 {
				return nil, models.ErrInsufficientStock
			}
		}

		order.Items = append(order.Items, models.OrderItem{
			ProductID: line.Product.ID,
			SellerID:  line.Product.SellerID,
			Quantity:  line.Quantity,
			Price:     line.Product.Price,
		})
	}

	if err := tx.Create(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// Checkout converts the user's cart into an order and clears the cart, all in
// one transaction.
func Checkout(db *gorm.DB, notifier notify.Notifier, userID uint) (*models.Order, error) {
	if err := resolveUser(db, userID); err != nil {
		return nil, err
	}

	var order *models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var items []models.CartItem
		if err := tx.Preload("Product").
			Where("user_id = ?", userID).
			Order("id").
			Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return models.ErrCartEmpty
		}

		lines := make([]manifestLine, 0, len(items))
		for _, item := range items {
			if item.Product.ID == 0 {
				return models.ErrProductNotFound
			}
			lines = append(lines, manifestLine{Product: item.Product, Quantity: item.Quantity})
		}

		var err error
		if order, err = applyManifest(tx, userID, lines); err != nil {
			return err
		}

		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}

	return finishOrder(db, notifier, order.ID)
}

// PurchaseSingle checks out a one-line ad-hoc manifest without touching the cart.
func PurchaseSingle(db *gorm.DB, notifier notify.Notifier, userID, productID uint, quantity int) (*models.Order, error) {
	if err := resolveUser(db, userID); err != nil {
		return nil, err
	}

	var order *models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrProductNotFound
			}
			return err
		}

		var err error
		order, err = applyManifest(tx, userID, []manifestLine{{Product: product, Quantity: quantity}})
		return err
	})
	if err != nil {
		return nil, err
	}

	return finishOrder(db, notifier, order.ID)
}

func resolveUser(db *gorm.DB, userID uint) error {
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrUserNotFound
		}
		return err
	}
	return nil
}

// finishOrder reloads the committed order with its associations and fires the
// notification. Notification failures are logged, never propagated: the
// checkout already committed.
func finishOrder(db *gorm.DB, notifier notify.Notifier, orderID uint) (*models.Order, error) {
	var order models.Order
	if err := db.
		Preload("User").
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.Seller").
		First(&order, orderID).Error; err != nil {
		return nil, err
	}

	if notifier != nil {
		if err := notifier.OrderShipped(&order); err != nil {
			log.Error().Err(err).Uint("order_id", order.ID).Msg("order notification failed")
		}
	}
	return &order, nil
}

// GetOrdersByUser lists a user's orders, newest first.
func GetOrdersByUser(db *gorm.DB, userID uint) ([]models.Order, error) {
	if err := resolveUser(db, userID); err != nil {
		return nil, err
	}

	var orders []models.Order
	if err := db.
		Preload("Items").
		Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrderForUser fetches one order, scoped to its owner.
func GetOrderForUser(db *gorm.DB, orderID, userID uint) (*models.Order, error) {
	var order models.Order
	if err := db.
		Preload("User").
		Preload("Items").
		Preload("Items.Product").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}
