package entity

import (
	"time"
)

// CartItem rows are hard-deleted: a soft-deleted row would still occupy the
// (cart_id, product_id) unique index and block re-adding the product.
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	CartID uint `gorm:"uniqueIndex:idx_cart_product;not null" json:"cartId"`
	Cart   Cart `json:"-"`

	ProductID uint    `gorm:"uniqueIndex:idx_cart_product;not null" json:"productId"`
	Product   Product `json:"product"`

	Quantity int `gorm:"not null" json:"quantity"`
}
