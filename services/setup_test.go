package services

import (
	"testing"

	"github.com/sohamaimain-boop/Pure-Element/entity"
	"github.com/sohamaimain-boop/Pure-Element/repository"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a fresh in-memory sqlite database with the full schema.
// Max one open connection, otherwise the pool would hand out a second empty
// :memory: database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.Product{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string, role entity.Role) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &entity.User{Email: email, Password: string(hash), Role: role}
	require.NoError(t, repository.NewUserRepository(db).CreateWithCart(user))
	return user
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *entity.Category {
	t.Helper()
	cat := &entity.Category{Name: name, ShowInNav: true}
	require.NoError(t, db.Create(cat).Error)
	return cat
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64, stock int, categoryID uint) *entity.Product {
	t.Helper()
	p := &entity.Product{Name: name, Price: price, Stock: stock, CategoryID: categoryID}
	require.NoError(t, db.Create(p).Error)
	return p
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewProductRepository(db))
}

func newCatalogService(db *gorm.DB) *CatalogService {
	return NewCatalogService(repository.NewProductRepository(db), repository.NewCategoryRepository(db))
}

func newAdminService(t *testing.T, db *gorm.DB) *AdminService {
	t.Helper()
	return NewAdminService(
		repository.NewProductRepository(db),
		repository.NewCategoryRepository(db),
		repository.NewUserRepository(db),
		t.TempDir(),
	)
}
