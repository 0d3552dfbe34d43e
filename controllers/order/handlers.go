package orderControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.String(http.StatusBadRequest, "invalid %s", name)
		return 0, false
	}
	return uint(id), true
}

// GET /api/orders/user/:userId
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseID(c, "userId")
		if !ok {
			return
		}
		orders, err := GetOrdersByUser(db, userID)
		if err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /api/orders/:orderId/user/:userId
func GetOrderDetailHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := parseID(c, "orderId")
		if !ok {
			return
		}
		userID, ok := parseID(c, "userId")
		if !ok {
			return
		}
		order, err := GetOrderForUser(db, orderID, userID)
		if err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /api/orders/seller/:sellerId
func GetSellerOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sellerID, ok := parseID(c, "sellerId")
		if !ok {
			return
		}
		rows, err := GetOrdersBySeller(db, sellerID)
		if err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

// GET /api/orders/seller/:sellerId/stats
func GetSellerStatsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sellerID, ok := parseID(c, "sellerId")
		if !ok {
			return
		}
		stats, err := GetSellerStats(db, sellerID)
		if err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
