package repository

import (
	"github.com/sohamaimain-boop/Pure-Element/entity"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) FindAll() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Order("name ASC").Find(&cats).Error
	return cats, err
}

func (r *CategoryRepository) FindByID(id uint) (*entity.Category, error) {
	var cat entity.Category
	if err := r.DB.First(&cat, id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepository) CountByName(name string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Category{}).Where("name = ?", name).Count(&count).Error
	return count, err
}

// CategoryCount pairs a category with the number of products referencing it.
type CategoryCount struct {
	entity.Category
	ProductCount int64 `json:"productCount"`
}

func (r *CategoryRepository) FindAllWithCounts() ([]CategoryCount, error) {
	var rows []CategoryCount
	err := r.DB.Model(&entity.Category{}).
		Select("categories.*, COUNT(products.id) AS product_count").
		Joins("LEFT JOIN products ON products.category_id = categories.id AND products.deleted_at IS NULL").
		Group("categories.id").
		Order("categories.name ASC").
		Find(&rows).Error
	return rows, err
}

// NavTree returns nav-visible parent categories with their nav-visible
// children, ordered by sort_order at both levels.
func (r *CategoryRepository) NavTree() ([]entity.Category, error) {
	var parents []entity.Category
	err := r.DB.
		Where("parent_id IS NULL AND show_in_nav = ?", true).
		Order("sort_order ASC").
		Preload("Children", func(tx *gorm.DB) *gorm.DB {
			return tx.Where("show_in_nav = ?", true).Order("sort_order ASC")
		}).
		Find(&parents).Error
	return parents, err
}

func (r *CategoryRepository) Create(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}

func (r *CategoryRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Category{}).Where("id = ?", id).Updates(updates).Error
}

func (r *CategoryRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Category{}, id).Error
}

func (r *CategoryRepository) ProductCount(id uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Product{}).Where("category_id = ?", id).Count(&count).Error
	return count, err
}
