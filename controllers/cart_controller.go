package controllers

import (
	"github.com/sohamaimain-boop/Pure-Element/pkg/resp"
	"github.com/sohamaimain-boop/Pure-Element/services"
	"github.com/sohamaimain-boop/Pure-Element/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	cart, err := h.Svc.Get(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": cart})
}

// POST /cart/add
func (h *CartController) Add(c *gin.Context) {
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Add(utils.CurrentUserID(c), &req); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "item added to cart"})
}

// PUT /cart/update/:itemId
func (h *CartController) UpdateQty(c *gin.Context) {
	itemID, ok := paramUint(c, "itemId")
	if !ok {
		return
	}
	var body struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.UpdateQuantity(utils.CurrentUserID(c), itemID, body.Quantity); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "cart item updated"})
}

// DELETE /cart/remove/:itemId
func (h *CartController) RemoveItem(c *gin.Context) {
	itemID, ok := paramUint(c, "itemId")
	if !ok {
		return
	}
	if err := h.Svc.RemoveItem(utils.CurrentUserID(c), itemID); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "item removed from cart"})
}

// DELETE /cart/clear
func (h *CartController) Clear(c *gin.Context) {
	if err := h.Svc.Clear(utils.CurrentUserID(c)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "cart cleared"})
}
