package entity

import (
	"gorm.io/gorm"
)

// Order is read-only in this service: the history endpoint lists rows written
// by an external checkout that does not exist yet.
type Order struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"`

	Status string  `json:"status"`
	Total  float64 `json:"total"`

	Items []OrderItem `json:"items"`
}
