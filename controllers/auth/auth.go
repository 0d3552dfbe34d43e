package authControllers

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Mercurial-spe/shop/models"
)

// Register creates a user after checking username and email are free. The
// role defaults to CUSTOMER. Passwords are stored as-is; this is legacy
// behavior the service deliberately preserves.
func Register(db *gorm.DB, user *models.User) error {
	var existing models.User
	err := db.Where("username = ?", user.Username).First(&existing).Error
	if err == nil {
		return models.ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if user.Email != nil && *user.Email != "" {
		err = db.Where("email = ?", *user.Email).First(&existing).Error
		if err == nil {
			return models.ErrEmailTaken
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}

	if user.Role == "" {
		user.Role = models.RoleCustomer
	}
	return db.Create(user).Error
}

// Login returns the user when the username exists and the password matches.
func Login(db *gorm.DB, username, password string) (*models.User, error) {
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrUserNotFound
		}
		return nil, err
	}
	if user.Password != password {
		return nil, models.ErrUserNotFound
	}
	return &user, nil
}

func GetUserByID(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
