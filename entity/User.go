package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Role     Role   `gorm:"not null;default:customer" json:"role"`

	// Relations — preload only when needed
	Cart   *Cart   `json:"-"`
	Orders []Order `json:"-"`
}
