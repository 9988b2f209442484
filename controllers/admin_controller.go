package controllers

import (
	"github.com/sohamaimain-boop/Pure-Element/pkg/resp"
	"github.com/sohamaimain-boop/Pure-Element/services"
	"github.com/sohamaimain-boop/Pure-Element/utils"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Svc           *services.AdminService
	UploadDir     string
	PublicBaseURL string
}

func NewAdminController(s *services.AdminService, uploadDir, publicBaseURL string) *AdminController {
	return &AdminController{Svc: s, UploadDir: uploadDir, PublicBaseURL: publicBaseURL}
}

// POST /admin/upload-image
func (ac *AdminController) UploadImage(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		resp.BadRequest(c, "no image file provided")
		return
	}

	key, err := utils.SaveImage(c, fh, ac.UploadDir)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	resp.OK(c, gin.H{
		"message":  "image uploaded",
		"imageUrl": ac.PublicBaseURL + "/uploads/" + key,
		"fileName": key,
	})
}

// POST /admin/products
func (ac *AdminController) CreateProduct(c *gin.Context) {
	var req services.CreateProductIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	product, err := ac.Svc.CreateProduct(&req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{"message": "product created", "product": product})
}

// PUT /admin/products/:id
func (ac *AdminController) UpdateProduct(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	var req services.UpdateProductIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	product, err := ac.Svc.UpdateProduct(id, &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "product updated", "product": product})
}

// DELETE /admin/products/:id
func (ac *AdminController) DeleteProduct(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	if err := ac.Svc.DeleteProduct(id); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "product deleted"})
}

// POST /admin/categories
func (ac *AdminController) CreateCategory(c *gin.Context) {
	var req services.CreateCategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	category, err := ac.Svc.CreateCategory(&req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{"message": "category created", "category": category})
}

// PUT /admin/categories/:id
func (ac *AdminController) UpdateCategory(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	var req services.UpdateCategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	category, err := ac.Svc.UpdateCategory(id, &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "category updated", "category": category})
}

// DELETE /admin/categories/:id
func (ac *AdminController) DeleteCategory(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	if err := ac.Svc.DeleteCategory(id); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "category deleted"})
}

// GET /admin/users
func (ac *AdminController) Users(c *gin.Context) {
	users, err := ac.Svc.ListUsers()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"users": users})
}
