package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/Mercurial-spe/shop/controllers/order"
)

func SetupOrderRoutes(api *gin.RouterGroup, db *gorm.DB) {
	orders := api.Group("/orders")
	{
		orders.GET("/user/:userId", orderControllers.GetUserOrdersHandler(db))
		orders.GET("/:orderId/user/:userId", orderControllers.GetOrderDetailHandler(db))
		orders.GET("/seller/:sellerId", orderControllers.GetSellerOrdersHandler(db))
		orders.GET("/seller/:sellerId/stats", orderControllers.GetSellerStatsHandler(db))
	}
}
