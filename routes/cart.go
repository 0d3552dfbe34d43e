package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/Mercurial-spe/shop/controllers/cart"
	"github.com/Mercurial-spe/shop/notify"
)

func SetupCartRoutes(api *gin.RouterGroup, db *gorm.DB, notifier notify.Notifier) {
	cart := api.Group("/cart")
	{
		cart.GET("/:userId", cartControllers.GetCartHandler(db))
		cart.POST("/add", cartControllers.AddToCartHandler(db))
		cart.DELETE("/:userId/item/:cartItemId", cartControllers.RemoveFromCartHandler(db))
		cart.DELETE("/:userId/clear", cartControllers.ClearCartHandler(db))
		cart.POST("/:userId/checkout", cartControllers.CheckoutHandler(db, notifier))
	}
}
