package controllers

import (
	"strconv"

	"bufood/pkg/resp"
	"bufood/services"
	"bufood/utils"
	"bufood/ws"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	Chat *services.ChatService
	Hub  *ws.Hub
}

func NewChatController(chat *services.ChatService, hub *ws.Hub) *ChatController {
	return &ChatController{Chat: chat, Hub: hub}
}

// GET /orders/:id/conversation
func (cc *ChatController) ConversationForOrder(c *gin.Context) {
	conv, err := cc.Chat.ConversationForOrder(c.Param("id"), utils.CurrentUserID(c))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, conv)
}

// GET /conversations/:id/messages
func (cc *ChatController) ListMessages(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	msgs, err := cc.Chat.ListMessages(c.Param("id"), utils.CurrentUserID(c), limit)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"items": msgs})
}

type sendMessageReq struct {
	Content string `json:"content" binding:"required"`
}

// POST /conversations/:id/messages
func (cc *ChatController) SendMessage(c *gin.Context) {
	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m, err := cc.Chat.SendMessage(c.Param("id"), utils.CurrentUserID(c), req.Content)
	if err != nil {
		writeErr(c, err)
		return
	}
	if cc.Hub != nil {
		if conv, err := cc.Chat.Repo.GetConversation(c.Param("id")); err == nil {
			cc.Hub.MessageSent(conv, m)
		}
	}
	resp.Created(c, m)
}
