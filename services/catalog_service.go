package services

import (
	"errors"
	"fmt"

	"github.com/sohamaimain-boop/Pure-Element/entity"
	"github.com/sohamaimain-boop/Pure-Element/pkg/apperr"
	"github.com/sohamaimain-boop/Pure-Element/repository"

	"gorm.io/gorm"
)

type CatalogService struct {
	ProductRepo  *repository.ProductRepository
	CategoryRepo *repository.CategoryRepository
}

func NewCatalogService(pr *repository.ProductRepository, cr *repository.CategoryRepository) *CatalogService {
	return &CatalogService{ProductRepo: pr, CategoryRepo: cr}
}

func (s *CatalogService) ListProducts() ([]entity.Product, error) {
	return s.ProductRepo.FindAll()
}

func (s *CatalogService) ProductsByCategory(categoryID uint) ([]entity.Product, error) {
	return s.ProductRepo.FindByCategory(categoryID)
}

func (s *CatalogService) GetProduct(id uint) (*entity.Product, error) {
	p, err := s.ProductRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: product", apperr.ErrNotFound)
	}
	return p, err
}

func (s *CatalogService) SearchProducts(query string) ([]entity.Product, error) {
	return s.ProductRepo.Search(query)
}

func (s *CatalogService) ListCategories() ([]entity.Category, error) {
	return s.CategoryRepo.FindAll()
}

func (s *CatalogService) CategoriesWithCounts() ([]repository.CategoryCount, error) {
	return s.CategoryRepo.FindAllWithCounts()
}

// CategoryTree is the two-level navigation tree: nav-visible parents with
// their nav-visible children, sorted by sort order at both levels.
func (s *CatalogService) CategoryTree() ([]entity.Category, error) {
	return s.CategoryRepo.NavTree()
}
