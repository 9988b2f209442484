package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	ProductID uint    `json:"productId"`
	Product   Product `json:"product"`

	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"` // unit price at purchase time
}
