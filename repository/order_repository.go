package repository

import (
	"github.com/sohamaimain-boop/Pure-Element/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// FindByUser lists the user's orders newest first, with line items and a
// product snapshot for each.
func (r *OrderRepository) FindByUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.
		Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.Product").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}
