package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sohamaimain-boop/Pure-Element/configs"
	"github.com/sohamaimain-boop/Pure-Element/entity"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	cfg := &configs.Config{
		Port:          "0",
		JWTSecret:     "test-secret",
		JWTTTL:        time.Hour,
		UploadDir:     t.TempDir(),
		PublicBaseURL: "http://localhost:8000",
	}

	r := gin.New()
	RegisterRoutes(r, db, cfg)
	return r, db
}

func seedAdmin(t *testing.T, db *gorm.DB) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	admin := &entity.User{Email: "admin@example.com", Password: string(hash), Role: entity.RoleAdmin}
	require.NoError(t, db.Create(admin).Error)
	require.NoError(t, db.Create(&entity.Cart{UserID: admin.ID}).Error)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()
	w := doJSON(t, r, "POST", "/auth/login", "", gin.H{"email": email, "password": password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

func TestCartRequiresToken(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, route := range []struct{ method, path string }{
		{"GET", "/cart"},
		{"POST", "/cart/add"},
		{"PUT", "/cart/update/1"},
		{"DELETE", "/cart/remove/1"},
		{"DELETE", "/cart/clear"},
	} {
		w := doJSON(t, r, route.method, route.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, route.path)
	}

	req, _ := http.NewRequest("GET", "/cart", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRoutesForbiddenForCustomers(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, "POST", "/auth/register", "", gin.H{"email": "buyer@example.com", "password": "secret123"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	token := login(t, r, "buyer@example.com", "secret123")

	// 403 regardless of payload validity
	for _, route := range []struct{ method, path string }{
		{"GET", "/admin/users"},
		{"POST", "/admin/products"},
		{"PUT", "/admin/products/1"},
		{"DELETE", "/admin/products/1"},
		{"POST", "/admin/categories"},
		{"POST", "/admin/upload-image"},
	} {
		w := doJSON(t, r, route.method, route.path, token, nil)
		assert.Equal(t, http.StatusForbidden, w.Code, route.path)
	}
}

func TestRegisterAndCartFlow(t *testing.T) {
	r, db := newTestRouter(t)

	cat := &entity.Category{Name: "Skincare", ShowInNav: true}
	require.NoError(t, db.Create(cat).Error)
	product := &entity.Product{Name: "Aloe Vera Gel", Price: 12.50, Stock: 5, CategoryID: cat.ID}
	require.NoError(t, db.Create(product).Error)

	w := doJSON(t, r, "POST", "/auth/register", "", gin.H{"email": "buyer@example.com", "password": "secret123"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	token := login(t, r, "buyer@example.com", "secret123")

	w = doJSON(t, r, "POST", "/cart/add", token, gin.H{"productId": product.ID, "quantity": 2})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, "GET", "/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var out struct {
		Cart struct {
			ID    *uint `json:"id"`
			Items []struct {
				ID       uint `json:"id"`
				Quantity int  `json:"quantity"`
			} `json:"items"`
			Total float64 `json:"total"`
		} `json:"cart"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.NotNil(t, out.Cart.ID)
	require.Len(t, out.Cart.Items, 1)
	assert.Equal(t, 2, out.Cart.Items[0].Quantity)
	assert.Equal(t, 25.0, out.Cart.Total)

	// exceeding stock on merge is a 400 and leaves the line unchanged
	w = doJSON(t, r, "POST", "/cart/add", token, gin.H{"productId": product.ID, "quantity": 4})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	itemID := out.Cart.Items[0].ID
	w = doJSON(t, r, "PUT", fmt.Sprintf("/cart/update/%d", itemID), token, gin.H{"quantity": 5})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, "DELETE", fmt.Sprintf("/cart/remove/%d", itemID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	// idempotent removal
	w = doJSON(t, r, "DELETE", fmt.Sprintf("/cart/remove/%d", itemID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminProductLifecycle(t *testing.T) {
	r, db := newTestRouter(t)
	seedAdmin(t, db)
	token := login(t, r, "admin@example.com", "admin123")

	w := doJSON(t, r, "POST", "/admin/categories", token, gin.H{"name": "Skincare"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var catOut struct {
		Category entity.Category `json:"category"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &catOut))

	// duplicate name conflicts
	w = doJSON(t, r, "POST", "/admin/categories", token, gin.H{"name": "Skincare"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, "POST", "/admin/products", token, gin.H{
		"name": "Aloe Vera Gel", "price": 12.50, "stock": 5, "categoryId": catOut.Category.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var prodOut struct {
		Product entity.Product `json:"product"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &prodOut))

	w = doJSON(t, r, "POST", "/admin/products", token, gin.H{
		"name": "Bad", "price": -1, "stock": 5, "categoryId": catOut.Category.ID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// public catalog sees the product
	w = doJSON(t, r, "GET", fmt.Sprintf("/products/%d", prodOut.Product.ID), "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, "GET", "/products/search/aloe", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Aloe Vera Gel")

	w = doJSON(t, r, "DELETE", fmt.Sprintf("/admin/products/%d", prodOut.Product.ID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, "GET", fmt.Sprintf("/products/%d", prodOut.Product.ID), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUploadRejectsNonImage(t *testing.T) {
	r, db := newTestRouter(t)
	seedAdmin(t, db)
	token := login(t, r, "admin@example.com", "admin123")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", "notes.txt")
	require.NoError(t, err)
	_, err = fw.Write([]byte("just text"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, err := http.NewRequest("POST", "/admin/upload-image", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProfileUpdate(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, "POST", "/auth/register", "", gin.H{"email": "me@example.com", "password": "secret123"})
	require.Equal(t, http.StatusCreated, w.Code)
	token := login(t, r, "me@example.com", "secret123")

	// short new password
	w = doJSON(t, r, "PUT", "/profile", token, gin.H{"currentPassword": "secret123", "newPassword": "abc"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, "PUT", "/profile", token, gin.H{"currentPassword": "secret123", "newPassword": "betterpass"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	login(t, r, "me@example.com", "betterpass")

	w = doJSON(t, r, "GET", "/profile/orders", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "orders")
}
