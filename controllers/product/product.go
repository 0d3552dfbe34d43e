package productControllers

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Mercurial-spe/shop/models"
)

// ProductRequest carries the mutable product fields plus the owning seller.
type ProductRequest struct {
	Name          string          `json:"name" binding:"required"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	ImageURL      string          `json:"imageUrl"`
	StockQuantity *int            `json:"stockQuantity"`
	SellerID      uint            `json:"sellerId"`
}

func GetAllProducts(db *gorm.DB) ([]models.Product, error) {
	var products []models.Product
	err := db.Preload("Seller").Order("id").Find(&products).Error
	return products, err
}

func GetProductByID(db *gorm.DB, id uint) (*models.Product, error) {
	var product models.Product
	if err := db.Preload("Seller").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func GetProductsBySeller(db *gorm.DB, sellerID uint) ([]models.Product, error) {
	var seller models.User
	if err := db.First(&seller, sellerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrSellerNotFound
		}
		return nil, err
	}
	if seller.Role != models.RoleSeller {
		return nil, models.ErrNotASeller
	}

	var products []models.Product
	err := db.Where("seller_id = ?", sellerID).Order("id").Find(&products).Error
	return products, err
}

func CreateProduct(db *gorm.DB, req ProductRequest) (*models.Product, error) {
	var seller models.User
	if err := db.First(&seller, req.SellerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrSellerNotFound
		}
		return nil, err
	}

	product := models.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		ImageURL:      req.ImageURL,
		StockQuantity: req.StockQuantity,
		SellerID:      seller.ID,
	}
	if err := db.Create(&product).Error; err != nil {
		return nil, err
	}
	product.Seller = seller
	return &product, nil
}

// UpdateProduct overwrites the mutable fields; the owning seller never changes.
func UpdateProduct(db *gorm.DB, id uint, req ProductRequest) (*models.Product, error) {
	var product models.Product
	if err := db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrProductNotFound
		}
		return nil, err
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.ImageURL = req.ImageURL
	product.StockQuantity = req.StockQuantity

	if err := db.Save(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func DeleteProduct(db *gorm.DB, id uint) error {
	res := db.Delete(&models.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrProductNotFound
	}
	return nil
}
