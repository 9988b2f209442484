package repository

import (
	"strings"

	"github.com/sohamaimain-boop/Pure-Element/entity"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) FindAll() ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.
		Preload("Category").
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

func (r *ProductRepository) FindByCategory(categoryID uint) ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.
		Preload("Category").
		Where("category_id = ?", categoryID).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

func (r *ProductRepository) FindByID(id uint) (*entity.Product, error) {
	var product entity.Product
	err := r.DB.
		Preload("Category").
		First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Search matches name or description case-insensitively (ILIKE on Postgres,
// LOWER LIKE keeps sqlite behaving the same).
func (r *ProductRepository) Search(query string) ([]entity.Product, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	var products []entity.Product
	err := r.DB.
		Preload("Category").
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

func (r *ProductRepository) Create(product *entity.Product) error {
	return r.DB.Create(product).Error
}

func (r *ProductRepository) Updates(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Product{}).Where("id = ?", id).Updates(updates).Error
}

func (r *ProductRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Product{}, id).Error
}
