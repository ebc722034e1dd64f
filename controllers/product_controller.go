package controllers

import (
	"bufood/pkg/resp"
	"bufood/services"
	"bufood/utils"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	Products *services.ProductService
}

func NewProductController(products *services.ProductService) *ProductController {
	return &ProductController{Products: products}
}

// GET /stores/:id/products
func (pc *ProductController) ListByStore(c *gin.Context) {
	products, err := pc.Products.ListByStore(c.Param("id"), true)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": products})
}

// GET /products/:id
func (pc *ProductController) Detail(c *gin.Context) {
	p, err := pc.Products.Get(c.Param("id"))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, p)
}

// POST /seller/products
func (pc *ProductController) Create(c *gin.Context) {
	var req services.ProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := pc.Products.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.Created(c, p)
}

// PATCH /seller/products/:id
func (pc *ProductController) Update(c *gin.Context) {
	var req services.ProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := pc.Products.Update(utils.CurrentUserID(c), c.Param("id"), &req)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, p)
}

// DELETE /seller/products/:id
func (pc *ProductController) Delete(c *gin.Context) {
	if err := pc.Products.Delete(utils.CurrentUserID(c), c.Param("id")); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
