package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authControllers "github.com/Mercurial-spe/shop/controllers/auth"
)

func SetupAuthRoutes(api *gin.RouterGroup, db *gorm.DB) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", authControllers.RegisterHandler(db))
		auth.POST("/login", authControllers.LoginHandler(db))
		auth.GET("/users/:id", authControllers.GetUserHandler(db))
	}
}
