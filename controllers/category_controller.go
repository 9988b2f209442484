package controllers

import (
	"github.com/sohamaimain-boop/Pure-Element/pkg/resp"
	"github.com/sohamaimain-boop/Pure-Element/services"

	"github.com/gin-gonic/gin"
)

type CategoryController struct{ Svc *services.CatalogService }

func NewCategoryController(s *services.CatalogService) *CategoryController {
	return &CategoryController{Svc: s}
}

// GET /categories
func (h *CategoryController) List(c *gin.Context) {
	categories, err := h.Svc.ListCategories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"categories": categories})
}

// GET /categories/with-counts
func (h *CategoryController) WithCounts(c *gin.Context) {
	categories, err := h.Svc.CategoriesWithCounts()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"categories": categories})
}

// GET /categories/tree
func (h *CategoryController) Tree(c *gin.Context) {
	categories, err := h.Svc.CategoryTree()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"categories": categories})
}
