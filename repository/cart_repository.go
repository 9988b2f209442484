package repository

import (
	"errors"
	"time"

	"github.com/sohamaimain-boop/Pure-Element/entity"
	"github.com/sohamaimain-boop/Pure-Element/pkg/apperr"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetCartWithItems returns the user's cart with line items and product
// snapshots. A user without a cart row gets an empty cart value, not an error.
func (r *CartRepository) GetCartWithItems(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("id ASC") }).
		Preload("Items.Product").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CartRepository) GetOrCreateCart(tx *gorm.DB, userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := tx.Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID}
		if err := tx.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// AddItem merges qty into the (cart, product) line or inserts a new one. Both
// paths check stock inside the statement itself, so no read-then-write window
// exists and the merged quantity can never exceed stock.
func (r *CartRepository) AddItem(tx *gorm.DB, cartID, productID uint, qty int) error {
	res := tx.Exec(`
		UPDATE cart_items
		   SET quantity = quantity + ?, updated_at = ?
		 WHERE cart_id = ? AND product_id = ?
		   AND quantity + ? <= (SELECT stock FROM products
		                         WHERE products.id = cart_items.product_id
		                           AND products.deleted_at IS NULL)
	`, qty, time.Now(), cartID, productID, qty)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	// No row updated: either the line exists but the merge would exceed
	// stock, or there is no line yet.
	var existing int64
	if err := tx.Model(&entity.CartItem{}).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		return apperr.ErrInsufficientStock
	}

	now := time.Now()
	res = tx.Exec(`
		INSERT INTO cart_items (created_at, updated_at, cart_id, product_id, quantity)
		SELECT ?, ?, ?, ?, ?
		  FROM products
		 WHERE id = ? AND deleted_at IS NULL AND stock >= ?
	`, now, now, cartID, productID, qty, productID, qty)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrInsufficientStock
	}
	return nil
}

// UpdateQty sets the quantity of an item in the caller's cart. Ownership goes
// through the carts→user subselect rather than a client-supplied cart id, and
// the stock check rides in the same UPDATE.
func (r *CartRepository) UpdateQty(tx *gorm.DB, userID, itemID uint, qty int) error {
	res := tx.Exec(`
		UPDATE cart_items
		   SET quantity = ?, updated_at = ?
		 WHERE id = ?
		   AND cart_id IN (SELECT id FROM carts WHERE user_id = ? AND deleted_at IS NULL)
		   AND ? <= (SELECT stock FROM products
		              WHERE products.id = cart_items.product_id
		                AND products.deleted_at IS NULL)
	`, qty, time.Now(), itemID, userID, qty)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	var owned int64
	err := tx.Model(&entity.CartItem{}).
		Where("cart_items.id = ? AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)", itemID, userID).
		Count(&owned).Error
	if err != nil {
		return err
	}
	if owned == 0 {
		return apperr.ErrNotFound
	}
	return apperr.ErrInsufficientStock
}

// RemoveItem deletes the line scoped to the caller's cart. Removing an item
// that is already gone is a success.
func (r *CartRepository) RemoveItem(tx *gorm.DB, userID, itemID uint) error {
	return tx.
		Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)", itemID, userID).
		Delete(&entity.CartItem{}).Error
}

func (r *CartRepository) ClearCart(tx *gorm.DB, userID uint) error {
	var c entity.Cart
	if err := tx.Where("user_id = ?", userID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return tx.Where("cart_id = ?", c.ID).Delete(&entity.CartItem{}).Error
}
