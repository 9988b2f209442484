package controllers

import (
	"github.com/sohamaimain-boop/Pure-Element/pkg/resp"
	"github.com/sohamaimain-boop/Pure-Element/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct{ Svc *services.CatalogService }

func NewProductController(s *services.CatalogService) *ProductController {
	return &ProductController{Svc: s}
}

// GET /products
func (h *ProductController) List(c *gin.Context) {
	products, err := h.Svc.ListProducts()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"products": products})
}

// GET /products/category/:categoryId
func (h *ProductController) ByCategory(c *gin.Context) {
	categoryID, ok := paramUint(c, "categoryId")
	if !ok {
		return
	}
	products, err := h.Svc.ProductsByCategory(categoryID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"products": products})
}

// GET /products/:id
func (h *ProductController) Detail(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	product, err := h.Svc.GetProduct(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"product": product})
}

// GET /products/search/:query
func (h *ProductController) Search(c *gin.Context) {
	products, err := h.Svc.SearchProducts(c.Param("query"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"products": products})
}
