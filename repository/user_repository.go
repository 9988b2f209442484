package repository

import (
	"time"

	"github.com/sohamaimain-boop/Pure-Element/entity"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// EmailTakenByOther checks uniqueness for profile updates.
func (r *UserRepository) EmailTakenByOther(email string, userID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).
		Where("email = ? AND id <> ?", email, userID).
		Count(&count).Error
	return count > 0, err
}

// CreateWithCart inserts the user and its cart in one transaction; every user
// has exactly one cart from creation time.
func (r *UserRepository) CreateWithCart(user *entity.User) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.Create(&entity.Cart{UserID: user.ID}).Error
	})
}

func (r *UserRepository) Update(userID uint, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).Updates(updates).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UserRow is the admin listing projection; the password hash never leaves the
// repository.
type UserRow struct {
	ID        uint        `json:"id"`
	Email     string      `json:"email"`
	Role      entity.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
}

func (r *UserRepository) List() ([]UserRow, error) {
	var rows []UserRow
	err := r.DB.Model(&entity.User{}).
		Select("id, email, role, created_at").
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}
