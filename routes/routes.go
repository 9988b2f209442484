package routes

import (
	"github.com/sohamaimain-boop/Pure-Element/configs"
	"github.com/sohamaimain-boop/Pure-Element/controllers"
	"github.com/sohamaimain-boop/Pure-Element/entity"
	"github.com/sohamaimain-boop/Pure-Element/middlewares"
	"github.com/sohamaimain-boop/Pure-Element/repository"
	"github.com/sohamaimain-boop/Pure-Element/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	catalogSvc := services.NewCatalogService(productRepo, categoryRepo)
	cartSvc := services.NewCartService(db, cartRepo, productRepo)
	profileSvc := services.NewProfileService(userRepo, orderRepo)
	adminSvc := services.NewAdminService(productRepo, categoryRepo, userRepo, cfg.UploadDir)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	productCtrl := controllers.NewProductController(catalogSvc)
	categoryCtrl := controllers.NewCategoryController(catalogSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	profileCtrl := controllers.NewProfileController(profileSvc)
	adminCtrl := controllers.NewAdminController(adminSvc, cfg.UploadDir, cfg.PublicBaseURL)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	adminOnly := middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", auth, authCtrl.Me)

	// Catalog (public)
	r.GET("/products", productCtrl.List)
	r.GET("/products/:id", productCtrl.Detail)
	r.GET("/products/category/:categoryId", productCtrl.ByCategory)
	r.GET("/products/search/:query", productCtrl.Search)

	r.GET("/categories", categoryCtrl.List)
	r.GET("/categories/with-counts", categoryCtrl.WithCounts)
	r.GET("/categories/tree", categoryCtrl.Tree)

	// Cart (requires login)
	cart := r.Group("/cart", auth)
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/add", cartCtrl.Add)
		cart.PUT("/update/:itemId", cartCtrl.UpdateQty)
		cart.DELETE("/remove/:itemId", cartCtrl.RemoveItem)
		cart.DELETE("/clear", cartCtrl.Clear)
	}

	// Profile
	profile := r.Group("/profile", auth)
	{
		profile.PUT("", profileCtrl.Update)
		profile.GET("/orders", profileCtrl.Orders)
	}

	// Admin (admin only)
	admin := r.Group("/admin", adminOnly)
	{
		admin.POST("/upload-image", adminCtrl.UploadImage)
		admin.POST("/products", adminCtrl.CreateProduct)
		admin.PUT("/products/:id", adminCtrl.UpdateProduct)
		admin.DELETE("/products/:id", adminCtrl.DeleteProduct)
		admin.POST("/categories", adminCtrl.CreateCategory)
		admin.PUT("/categories/:id", adminCtrl.UpdateCategory)
		admin.DELETE("/categories/:id", adminCtrl.DeleteCategory)
		admin.GET("/users", adminCtrl.Users)
	}
}
