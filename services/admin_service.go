package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/sohamaimain-boop/Pure-Element/entity"
	"github.com/sohamaimain-boop/Pure-Element/pkg/apperr"
	"github.com/sohamaimain-boop/Pure-Element/repository"
	"github.com/sohamaimain-boop/Pure-Element/utils"

	"gorm.io/gorm"
)

type AdminService struct {
	ProductRepo  *repository.ProductRepository
	CategoryRepo *repository.CategoryRepository
	UserRepo     *repository.UserRepository
	UploadDir    string
}

func NewAdminService(pr *repository.ProductRepository, cr *repository.CategoryRepository, ur *repository.UserRepository, uploadDir string) *AdminService {
	return &AdminService{ProductRepo: pr, CategoryRepo: cr, UserRepo: ur, UploadDir: uploadDir}
}

type CreateProductIn struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	Stock       int     `json:"stock"`
	CategoryID  uint    `json:"categoryId" binding:"required"`
	ImageURL    string  `json:"imageUrl"`
}

// UpdateProductIn is a patch: only non-nil fields are applied, so presence is
// checked at compile time instead of probing a dynamic map.
type UpdateProductIn struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	CategoryID  *uint    `json:"categoryId"`
	ImageURL    *string  `json:"imageUrl"`
}

func (s *AdminService) CreateProduct(in *CreateProductIn) (*entity.Product, error) {
	if in.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be greater than 0", apperr.ErrInvalidInput)
	}
	if in.Stock < 0 {
		return nil, fmt.Errorf("%w: stock cannot be negative", apperr.ErrInvalidInput)
	}
	if _, err := s.CategoryRepo.FindByID(in.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invalid category", apperr.ErrInvalidInput)
		}
		return nil, err
	}

	product := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		CategoryID:  in.CategoryID,
		ImageURL:    in.ImageURL,
	}
	if err := s.ProductRepo.Create(product); err != nil {
		return nil, err
	}
	return s.ProductRepo.FindByID(product.ID)
}

func (s *AdminService) UpdateProduct(id uint, in *UpdateProductIn) (*entity.Product, error) {
	if _, err := s.ProductRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product", apperr.ErrNotFound)
		}
		return nil, err
	}

	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Price != nil {
		if *in.Price <= 0 {
			return nil, fmt.Errorf("%w: price must be greater than 0", apperr.ErrInvalidInput)
		}
		updates["price"] = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, fmt.Errorf("%w: stock cannot be negative", apperr.ErrInvalidInput)
		}
		updates["stock"] = *in.Stock
	}
	if in.ImageURL != nil {
		updates["image_url"] = *in.ImageURL
	}
	if in.CategoryID != nil {
		if _, err := s.CategoryRepo.FindByID(*in.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: invalid category", apperr.ErrInvalidInput)
			}
			return nil, err
		}
		updates["category_id"] = *in.CategoryID
	}

	if len(updates) == 0 {
		return nil, fmt.Errorf("%w: no valid fields to update", apperr.ErrInvalidInput)
	}

	if err := s.ProductRepo.Updates(id, updates); err != nil {
		return nil, err
	}
	return s.ProductRepo.FindByID(id)
}

// DeleteProduct removes the row, then the stored image file. A failed image
// removal is logged, never surfaced.
func (s *AdminService) DeleteProduct(id uint) error {
	product, err := s.ProductRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: product", apperr.ErrNotFound)
		}
		return err
	}

	if err := s.ProductRepo.Delete(id); err != nil {
		return err
	}

	if product.ImageURL != "" {
		if err := utils.RemoveImage(product.ImageURL, s.UploadDir); err != nil {
			log.Println("delete product image:", err)
		}
	}
	return nil
}

type CreateCategoryIn struct {
	Name      string `json:"name" binding:"required"`
	ParentID  *uint  `json:"parentId"`
	SortOrder int    `json:"sortOrder"`
	ShowInNav *bool  `json:"showInNav"`
}

// UpdateCategoryIn patches a category. ParentID 0 clears the parent and
// promotes the category back to top-level.
type UpdateCategoryIn struct {
	Name      *string `json:"name"`
	ParentID  *uint   `json:"parentId"`
	SortOrder *int    `json:"sortOrder"`
	ShowInNav *bool   `json:"showInNav"`
}

func (s *AdminService) CreateCategory(in *CreateCategoryIn) (*entity.Category, error) {
	count, err := s.CategoryRepo.CountByName(in.Name)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: category already exists", apperr.ErrConflict)
	}
	if in.ParentID != nil {
		if err := s.checkParent(*in.ParentID); err != nil {
			return nil, err
		}
	}

	cat := &entity.Category{
		Name:      in.Name,
		ParentID:  in.ParentID,
		SortOrder: in.SortOrder,
		ShowInNav: true,
	}
	if in.ShowInNav != nil {
		cat.ShowInNav = *in.ShowInNav
	}
	if err := s.CategoryRepo.Create(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *AdminService) UpdateCategory(id uint, in *UpdateCategoryIn) (*entity.Category, error) {
	cat, err := s.CategoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: category", apperr.ErrNotFound)
		}
		return nil, err
	}

	updates := map[string]any{}
	if in.Name != nil && *in.Name != cat.Name {
		count, err := s.CategoryRepo.CountByName(*in.Name)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, fmt.Errorf("%w: category already exists", apperr.ErrConflict)
		}
		updates["name"] = *in.Name
	}
	if in.ParentID != nil {
		if *in.ParentID == 0 {
			updates["parent_id"] = nil
		} else {
			if err := s.checkParent(*in.ParentID); err != nil {
				return nil, err
			}
			updates["parent_id"] = *in.ParentID
		}
	}
	if in.SortOrder != nil {
		updates["sort_order"] = *in.SortOrder
	}
	if in.ShowInNav != nil {
		updates["show_in_nav"] = *in.ShowInNav
	}

	if len(updates) == 0 {
		return nil, fmt.Errorf("%w: no valid fields to update", apperr.ErrInvalidInput)
	}

	if err := s.CategoryRepo.Update(id, updates); err != nil {
		return nil, err
	}
	return s.CategoryRepo.FindByID(id)
}

// DeleteCategory refuses to orphan products that still reference the
// category.
func (s *AdminService) DeleteCategory(id uint) error {
	if _, err := s.CategoryRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: category", apperr.ErrNotFound)
		}
		return err
	}
	count, err := s.CategoryRepo.ProductCount(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: category still has products", apperr.ErrConflict)
	}
	return s.CategoryRepo.Delete(id)
}

func (s *AdminService) ListUsers() ([]repository.UserRow, error) {
	return s.UserRepo.List()
}

// checkParent keeps the tree two-level: a parent must exist and be top-level.
func (s *AdminService) checkParent(parentID uint) error {
	parent, err := s.CategoryRepo.FindByID(parentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: invalid parent category", apperr.ErrInvalidInput)
		}
		return err
	}
	if parent.ParentID != nil {
		return fmt.Errorf("%w: parent must be a top-level category", apperr.ErrInvalidInput)
	}
	return nil
}
