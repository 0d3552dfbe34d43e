package productControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/Mercurial-spe/shop/controllers/order"
	"github.com/Mercurial-spe/shop/models"
	"github.com/Mercurial-spe/shop/notify"
)

type PurchaseRequest struct {
	UserID   *uint `json:"userId"`
	Quantity int   `json:"quantity" binding:"omitempty,min=1"`
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.String(http.StatusBadRequest, "invalid %s", name)
		return 0, false
	}
	return uint(id), true
}

// GET /api/products
func GetProductsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := GetAllProducts(db)
		if err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /api/products/:id
func GetProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		product, err := GetProductByID(db, id)
		if err != nil {
			if errors.Is(err, models.ErrProductNotFound) {
				c.Status(http.StatusNotFound)
				return
			}
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GET /api/products/seller/:sellerId
func GetSellerProductsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sellerID, ok := parseID(c, "sellerId")
		if !ok {
			return
		}
		products, err := GetProductsBySeller(db, sellerID)
		if err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// POST /api/products
func CreateProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.String(http.StatusBadRequest, "invalid input: %s", err.Error())
			return
		}
		product, err := CreateProduct(db, req)
		if err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// PUT /api/products/:id
func UpdateProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		var req ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.String(http.StatusBadRequest, "invalid input: %s", err.Error())
			return
		}
		product, err := UpdateProduct(db, id, req)
		if err != nil {
			if errors.Is(err, models.ErrProductNotFound) {
				c.Status(http.StatusNotFound)
				return
			}
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// DELETE /api/products/:id
func DeleteProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		if err := DeleteProduct(db, id); err != nil {
			if errors.Is(err, models.ErrProductNotFound) {
				c.Status(http.StatusNotFound)
				return
			}
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// POST /api/products/:id/purchase
func PurchaseHandler(db *gorm.DB, notifier notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		var req PurchaseRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.String(http.StatusBadRequest, "invalid input: %s", err.Error())
			return
		}
		if req.UserID == nil {
			// Matches the legacy response for a missing user id.
			c.String(http.StatusBadRequest, models.ErrUserNotFound.Error())
			return
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}
		order, err := orderControllers.PurchaseSingle(db, notifier, *req.UserID, id, req.Quantity)
		if err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
