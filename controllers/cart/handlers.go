package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/Mercurial-spe/shop/controllers/order"
	"github.com/Mercurial-spe/shop/notify"
)

type AddToCartRequest struct {
	UserID    uint `json:"userId" binding:"required"`
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"omitempty,min=1"`
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.String(http.StatusBadRequest, "invalid %s", name)
		return 0, false
	}
	return uint(id), true
}

// GET /api/cart/:userId
func GetCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseID(c, "userId")
		if !ok {
			return
		}
		items, err := GetCart(db, userID)
		if err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// POST /api/cart/add
func AddToCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddToCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.String(http.StatusBadRequest, "invalid input: %s", err.Error())
			return
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}
		item, err := AddToCart(db, req.UserID, req.ProductID, req.Quantity)
		if err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /api/cart/:userId/item/:cartItemId
func RemoveFromCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartItemID, ok := parseID(c, "cartItemId")
		if !ok {
			return
		}
		if err := RemoveFromCart(db, cartItemID); err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// DELETE /api/cart/:userId/clear
func ClearCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseID(c, "userId")
		if !ok {
			return
		}
		if err := ClearCart(db, userID); err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// POST /api/cart/:userId/checkout
func CheckoutHandler(db *gorm.DB, notifier notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseID(c, "userId")
		if !ok {
			return
		}
		if _, err := orderControllers.Checkout(db, notifier, userID); err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		c.Status(http.StatusNoContent)
	}
}
