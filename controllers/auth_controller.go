package controllers

import (
	"bufood/pkg/resp"
	"bufood/services"
	"bufood/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

func (ac *AuthController) Register(c *gin.Context) {
	var req services.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	u, err := ac.Auth.Register(&req)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.Created(c, u)
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, u, err := ac.Auth.Login(req.Email, req.Password)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "user": u})
}

func (ac *AuthController) Me(c *gin.Context) {
	u, err := ac.Auth.Repo.GetByID(utils.CurrentUserID(c))
	if err != nil {
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, u)
}
