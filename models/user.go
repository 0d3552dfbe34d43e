package models

import "time"

type UserRole string

const (
	RoleCustomer UserRole = "CUSTOMER"
	RoleSeller   UserRole = "SELLER"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"unique;not null" json:"username"`
	// Plaintext, inherited from the legacy system. Hashing is out of scope.
	Password  string    `gorm:"not null" json:"-"`
	Email     *string   `gorm:"unique" json:"email"`
	Role      UserRole  `gorm:"type:VARCHAR(20);default:'CUSTOMER'" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
