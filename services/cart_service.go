package services

import (
	"errors"
	"fmt"
	"math"

	"github.com/sohamaimain-boop/Pure-Element/pkg/apperr"
	"github.com/sohamaimain-boop/Pure-Element/repository"

	"gorm.io/gorm"
)

type CartService struct {
	DB          *gorm.DB
	CartRepo    *repository.CartRepository
	ProductRepo *repository.ProductRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, pr *repository.ProductRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, ProductRepo: pr}
}

type AddToCartIn struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// ProductSnapshot is the slice of the product a cart line exposes.
type ProductSnapshot struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl"`
	Stock    int     `json:"stock"`
}

type CartItemView struct {
	ID       uint            `json:"id"`
	Quantity int             `json:"quantity"`
	Product  ProductSnapshot `json:"product"`
}

// CartView is what GET /cart returns. A user without a cart row gets the
// degenerate empty state: id null, no items, total zero.
type CartView struct {
	ID    *uint          `json:"id"`
	Items []CartItemView `json:"items"`
	Total float64        `json:"total"`
}

func (s *CartService) Get(userID uint) (*CartView, error) {
	c, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, err
	}

	view := &CartView{Items: []CartItemView{}}
	if c.ID != 0 {
		id := c.ID
		view.ID = &id
	}

	var total float64
	for _, it := range c.Items {
		total += it.Product.Price * float64(it.Quantity)
		view.Items = append(view.Items, CartItemView{
			ID:       it.ID,
			Quantity: it.Quantity,
			Product: ProductSnapshot{
				ID:       it.Product.ID,
				Name:     it.Product.Name,
				Price:    it.Product.Price,
				ImageURL: it.Product.ImageURL,
				Stock:    it.Product.Stock,
			},
		})
	}
	view.Total = round2(total)
	return view, nil
}

func (s *CartService) Add(userID uint, in *AddToCartIn) error {
	if in.Quantity <= 0 {
		in.Quantity = 1
	}

	product, err := s.ProductRepo.FindByID(in.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: product", apperr.ErrNotFound)
		}
		return err
	}
	if product.Stock < in.Quantity {
		return apperr.ErrInsufficientStock
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		c, err := s.CartRepo.GetOrCreateCart(tx, userID)
		if err != nil {
			return err
		}
		return s.CartRepo.AddItem(tx, c.ID, product.ID, in.Quantity)
	})
}

func (s *CartService) UpdateQuantity(userID, itemID uint, qty int) error {
	if qty < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", apperr.ErrInvalidInput)
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpdateQty(tx, userID, itemID, qty)
	})
}

func (s *CartService) RemoveItem(userID, itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, userID, itemID)
	})
}

func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, userID)
	})
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
