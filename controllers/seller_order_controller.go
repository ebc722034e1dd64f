package controllers

import (
	"strconv"
	"time"

	"bufood/entity"
	"bufood/pkg/resp"
	"bufood/repository"
	"bufood/services"
	"bufood/utils"

	"github.com/gin-gonic/gin"
)

// SellerOrderController is the seller side of the order API.
type SellerOrderController struct {
	Orders *services.OrderService
}

func NewSellerOrderController(orders *services.OrderService) *SellerOrderController {
	return &SellerOrderController{Orders: orders}
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t
	}
	return nil
}

// GET /seller/orders
func (sc *SellerOrderController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	f := repository.SellerOrderFilter{
		Status:    entity.OrderStatus(c.Query("status")),
		OrderType: entity.OrderType(c.Query("orderType")),
		From:      parseDate(c.Query("from")),
		To:        parseDate(c.Query("to")),
		Page:      page,
		Limit:     limit,
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}

	out, err := sc.Orders.ListForSeller(utils.CurrentUserID(c), f)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /seller/analytics
func (sc *SellerOrderController) Analytics(c *gin.Context) {
	top, _ := strconv.Atoi(c.Query("top"))
	out, err := sc.Orders.SellerAnalytics(utils.CurrentUserID(c), top)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /seller/orders/:id
func (sc *SellerOrderController) Detail(c *gin.Context) {
	order, err := sc.Orders.GetByID(c.Param("id"), utils.CurrentUserID(c))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{
		"order":          order,
		"allowedActions": services.AllowedTransitions(order, entity.RoleSeller),
	})
}

type acceptReq struct {
	EstimatedTime int    `json:"estimatedTime"`
	Note          string `json:"note"`
}

// POST /seller/orders/:id/accept
func (sc *SellerOrderController) Accept(c *gin.Context) {
	var req acceptReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := sc.Orders.Accept(c.Param("id"), utils.CurrentUserID(c), req.EstimatedTime, req.Note)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, order)
}

type rejectReq struct {
	Reason string `json:"reason"`
}

// POST /seller/orders/:id/reject
func (sc *SellerOrderController) Reject(c *gin.Context) {
	var req rejectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := sc.Orders.Reject(c.Param("id"), utils.CurrentUserID(c), req.Reason)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, order)
}

type updateStatusReq struct {
	Status entity.OrderStatus `json:"status" binding:"required"`
	Note   string             `json:"note"`
}

// PATCH /seller/orders/:id/status
func (sc *SellerOrderController) UpdateStatus(c *gin.Context) {
	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := sc.Orders.UpdateStatus(c.Param("id"), utils.CurrentUserID(c), entity.RoleSeller, req.Status, req.Note)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /seller/orders/:id/mark-paid
func (sc *SellerOrderController) MarkPaid(c *gin.Context) {
	order, err := sc.Orders.MarkPaid(c.Param("id"), utils.CurrentUserID(c))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /seller/orders/:id/payment-failed
func (sc *SellerOrderController) MarkPaymentFailed(c *gin.Context) {
	order, err := sc.Orders.MarkPaymentFailed(c.Param("id"), utils.CurrentUserID(c))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, order)
}
