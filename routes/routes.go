package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Mercurial-spe/shop/notify"
)

// SetupRoutes wires every resource group under /api.
func SetupRoutes(r *gin.Engine, db *gorm.DB, notifier notify.Notifier) {
	api := r.Group("/api")

	SetupAuthRoutes(api, db)
	SetupCartRoutes(api, db, notifier)
	SetupProductRoutes(api, db, notifier)
	SetupOrderRoutes(api, db)
}
