package authControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Mercurial-spe/shop/models"
)

type RegisterRequest struct {
	Username string          `json:"username" binding:"required"`
	Password string          `json:"password" binding:"required"`
	Email    *string         `json:"email"`
	Role     models.UserRole `json:"role"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/register
func RegisterHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.String(http.StatusBadRequest, "invalid input: %s", err.Error())
			return
		}
		user := models.User{
			Username: req.Username,
			Password: req.Password,
			Email:    req.Email,
			Role:     req.Role,
		}
		if err := Register(db, &user); err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// POST /api/auth/login
func LoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.String(http.StatusBadRequest, "invalid input: %s", err.Error())
			return
		}
		user, err := Login(db, req.Username, req.Password)
		if err != nil {
			c.String(http.StatusUnauthorized, "invalid username or password")
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// GET /api/auth/users/:id
func GetUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.String(http.StatusBadRequest, "invalid id")
			return
		}
		user, err := GetUserByID(db, uint(id))
		if err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
