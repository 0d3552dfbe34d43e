package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productControllers "github.com/Mercurial-spe/shop/controllers/product"
	"github.com/Mercurial-spe/shop/notify"
)

func SetupProductRoutes(api *gin.RouterGroup, db *gorm.DB, notifier notify.Notifier) {
	products := api.Group("/products")
	{
		products.GET("", productControllers.GetProductsHandler(db))
		products.GET("/:id", productControllers.GetProductHandler(db))
		products.GET("/seller/:sellerId", productControllers.GetSellerProductsHandler(db))
		products.POST("", productControllers.CreateProductHandler(db))
		products.PUT("/:id", productControllers.UpdateProductHandler(db))
		products.DELETE("/:id", productControllers.DeleteProductHandler(db))
		products.POST("/:id/purchase", productControllers.PurchaseHandler(db, notifier))
	}
}
