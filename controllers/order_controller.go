package controllers

import (
	"bufood/entity"
	"bufood/pkg/resp"
	"bufood/services"
	"bufood/utils"

	"github.com/gin-gonic/gin"
)

// OrderController is the customer side of the order API.
type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// POST /orders/checkout-cart
func (oc *OrderController) CheckoutFromCart(c *gin.Context) {
	var req services.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	orders, err := oc.Orders.CheckoutFromCart(utils.CurrentUserID(c), req)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.Created(c, gin.H{"orders": orders})
}

type checkoutProductReq struct {
	services.CheckoutReq
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// POST /orders/checkout-product
func (oc *OrderController) CheckoutFromProduct(c *gin.Context) {
	var req checkoutProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := oc.Orders.CheckoutFromProduct(utils.CurrentUserID(c), req.ProductID, req.Quantity, req.CheckoutReq)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders
func (oc *OrderController) ListForMe(c *gin.Context) {
	orders, err := oc.Orders.ListForCustomer(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	order, err := oc.Orders.GetByID(c.Param("id"), utils.CurrentUserID(c))
	if err != nil {
		writeErr(c, err)
		return
	}
	// Both participants may look; allowed actions depend on who is asking.
	resp.OK(c, gin.H{
		"order":          order,
		"allowedActions": services.AllowedTransitions(order, entity.ActorRole(utils.CurrentRole(c))),
	})
}

type cancelReq struct {
	Reason string `json:"reason"`
}

// POST /orders/:id/cancel
func (oc *OrderController) Cancel(c *gin.Context) {
	var req cancelReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := oc.Orders.Cancel(c.Param("id"), utils.CurrentUserID(c), req.Reason)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, order)
}
