package controllers

import (
	"bufood/pkg/resp"
	"bufood/services"
	"bufood/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	Carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{Carts: carts}
}

// GET /cart
func (cc *CartController) Get(c *gin.Context) {
	cart, err := cc.Carts.Get(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cart)
}

type addItemReq struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// POST /cart/items
func (cc *CartController) AddItem(c *gin.Context) {
	var req addItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cart, err := cc.Carts.AddItem(utils.CurrentUserID(c), req.ProductID, req.Quantity)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, cart)
}

type updateItemReq struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// PATCH /cart/items/:id
func (cc *CartController) UpdateItem(c *gin.Context) {
	var req updateItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cart, err := cc.Carts.UpdateItem(utils.CurrentUserID(c), c.Param("id"), req.Quantity)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, cart)
}

// DELETE /cart/items/:id
func (cc *CartController) RemoveItem(c *gin.Context) {
	cart, err := cc.Carts.RemoveItem(utils.CurrentUserID(c), c.Param("id"))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, cart)
}

// DELETE /cart
func (cc *CartController) Clear(c *gin.Context) {
	if err := cc.Carts.Clear(utils.CurrentUserID(c)); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
