package handler

import (
	"net/http"

	"eaglehub/internal/domain"
	"eaglehub/internal/service"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chatSvc *service.ChatService
}

func NewChatHandler(chatSvc *service.ChatService) *ChatHandler {
	return &ChatHandler{chatSvc: chatSvc}
}

// History returns a page's full chat history, oldest first.
func (h *ChatHandler) History(c *gin.Context) {
	page := c.Param("page")
	if !domain.ValidPage(page) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page"})
		return
	}
	list, err := h.chatSvc.History(c.Request.Context(), page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": list})
}

// SendMessage appends a user message to the page's room.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	page := c.Param("page")
	if !domain.ValidPage(page) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page"})
		return
	}
	var req struct {
		Username string `json:"username" binding:"required"`
		Phone    string `json:"phone" binding:"required"`
		Text     string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username, phone and text are required"})
		return
	}
	msg, err := h.chatSvc.SendUserMessage(c.Request.Context(), page, req.Username, req.Phone, req.Text)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "send failed"})
		return
	}
	c.JSON(http.StatusOK, msg)
}

// AdminReply appends an admin message to a page, optionally addressed at a
// conversation's phone.
func (h *ChatHandler) AdminReply(c *gin.Context) {
	page := c.Param("page")
	if !domain.ValidPage(page) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page"})
		return
	}
	var req struct {
		Text  string `json:"text" binding:"required"`
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text required"})
		return
	}
	msg, err := h.chatSvc.SendAdminReply(c.Request.Context(), page, req.Text, req.Phone)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "send failed"})
		return
	}
	c.JSON(http.StatusOK, msg)
}

// Conversations lists every user thread across the four pages for the
// admin console, most recent first.
func (h *ChatHandler) Conversations(c *gin.Context) {
	list, err := h.chatSvc.Conversations(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"conversations": list})
}

// ConversationMessages returns one thread: the phone's messages on the
// page plus all admin replies there.
func (h *ChatHandler) ConversationMessages(c *gin.Context) {
	page := c.Param("page")
	phone := c.Param("phone")
	if !domain.ValidPage(page) || phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page or phone"})
		return
	}
	list, err := h.chatSvc.ConversationMessages(c.Request.Context(), page, phone)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": list})
}
