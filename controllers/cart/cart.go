package cartControllers

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Mercurial-spe/shop/models"
)

// GetCart returns the user's cart lines.
func GetCart(db *gorm.DB, userID uint) ([]models.CartItem, error) {
	if err := resolveUser(db, userID); err != nil {
		return nil, err
	}

	var items []models.CartItem
	if err := db.Preload("Product").
		Where("user_id = ?", userID).
		Order("id").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// AddToCart adds quantity of a product to the user's cart. If a line for the
// product already exists its quantity is incremented; the merge is a single
// upsert so concurrent adds cannot lose updates.
func AddToCart(db *gorm.DB, userID, productID uint, quantity int) (*models.CartItem, error) {
	if err := resolveUser(db, userID); err != nil {
		return nil, err
	}

	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrProductNotFound
		}
		return nil, err
	}

	item := models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("quantity + excluded.quantity"),
		}),
	}).Create(&item).Error; err != nil {
		return nil, err
	}

	// Re-read: on a merge the in-memory struct still holds the raw insert
	// quantity, not the summed row.
	var line models.CartItem
	if err := db.Preload("Product").
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&line).Error; err != nil {
		return nil, err
	}
	return &line, nil
}

// RemoveFromCart deletes one cart line by id, unconditionally. There is no
// ownership check against the caller; that matches the existing contract.
func RemoveFromCart(db *gorm.DB, cartItemID uint) error {
	return db.Delete(&models.CartItem{}, cartItemID).Error
}

// ClearCart deletes all of the user's cart lines in one statement. Clearing an
// empty cart is a no-op, not an error.
func ClearCart(db *gorm.DB, userID uint) error {
	if err := resolveUser(db, userID); err != nil {
		return err
	}
	return db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
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
