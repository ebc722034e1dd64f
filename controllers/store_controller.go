package controllers

import (
	"strconv"

	"bufood/pkg/resp"
	"bufood/services"
	"bufood/utils"

	"github.com/gin-gonic/gin"
)

type StoreController struct {
	Stores *services.StoreService
}

func NewStoreController(stores *services.StoreService) *StoreController {
	return &StoreController{Stores: stores}
}

// GET /stores
func (sc *StoreController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	stores, err := sc.Stores.List(limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": stores})
}

// GET /stores/:id
func (sc *StoreController) Detail(c *gin.Context) {
	store, err := sc.Stores.Get(c.Param("id"))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, store)
}

// GET /seller/store
func (sc *StoreController) Mine(c *gin.Context) {
	store, err := sc.Stores.GetMine(utils.CurrentUserID(c))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, store)
}

// POST /seller/store
func (sc *StoreController) Create(c *gin.Context) {
	var req services.StoreReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	store, err := sc.Stores.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.Created(c, store)
}

type updateStoreReq struct {
	services.StoreReq
	IsOpen *bool `json:"isOpen"`
}

// PATCH /seller/store
func (sc *StoreController) Update(c *gin.Context) {
	var req updateStoreReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	store, err := sc.Stores.Update(utils.CurrentUserID(c), &req.StoreReq, req.IsOpen)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, store)
}
