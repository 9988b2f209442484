package controllers

import (
	"github.com/sohamaimain-boop/Pure-Element/pkg/resp"
	"github.com/sohamaimain-boop/Pure-Element/services"
	"github.com/sohamaimain-boop/Pure-Element/utils"

	"github.com/gin-gonic/gin"
)

type ProfileController struct{ Svc *services.ProfileService }

func NewProfileController(s *services.ProfileService) *ProfileController {
	return &ProfileController{Svc: s}
}

// PUT /profile
func (h *ProfileController) Update(c *gin.Context) {
	var req services.UpdateProfileIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := h.Svc.Update(utils.CurrentUserID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{
		"message": "profile updated",
		"user":    gin.H{"id": user.ID, "email": user.Email, "role": user.Role},
	})
}

// GET /profile/orders
func (h *ProfileController) Orders(c *gin.Context) {
	orders, err := h.Svc.Orders(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}
