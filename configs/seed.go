package configs

import (
	"log"

	"github.com/sohamaimain-boop/Pure-Element/entity"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the first admin account (with its cart) if it does not
// exist yet.
func SeedAdmin(cfg *Config) error {
	db := DB()
	email := cfg.AdminEmail
	pass := cfg.AdminPassword
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		admin := entity.User{
			Email:    email,
			Password: string(hash),
			Role:     entity.RoleAdmin,
		}
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}
		return tx.Create(&entity.Cart{UserID: admin.ID}).Error
	})
}
