package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lalith-99/chatbook/internal/middleware"
	"github.com/lalith-99/chatbook/internal/repository"
	"go.uber.org/zap"
)

type MessageHandler struct {
	repo   repository.MessageRepository
	logger *zap.Logger
}

func NewMessageHandler(repo repository.MessageRepository, logger *zap.Logger) *MessageHandler {
	return &MessageHandler{repo: repo, logger: logger}
}

type createMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

type createMessageResponse struct {
	ID int64 `json:"id"`
}

// Create handles POST /v1/messages
//
// The message is only stored here. It has no group and no sender until
// it goes through Send.
func (h *MessageHandler) Create(c *gin.Context) {
	var req createMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := h.repo.CreateMessage(req.Content)
	c.JSON(http.StatusCreated, createMessageResponse{ID: id})
}

// Get handles GET /v1/messages/:id
func (h *MessageHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid message id"})
		return
	}

	msg, err := h.repo.GetMessage(id)
	if err != nil {
		respondError(c, h.logger, err, "failed to get message")
		return
	}

	c.JSON(http.StatusOK, msg)
}

type sendMessageRequest struct {
	MessageID int64  `json:"message_id" binding:"required,min=1"`
	Sender    string `json:"sender" binding:"required"`
}

type sendMessageResponse struct {
	Count int `json:"count"`
}

// Send handles POST /v1/groups/:id/messages
//
// Returns the group's message count after the send.
func (h *MessageHandler) Send(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	count, err := h.repo.SendMessage(req.MessageID, req.Sender, middleware.GetGroupID(c))
	if err != nil {
		respondError(c, h.logger, err, "failed to send message")
		return
	}

	c.JSON(http.StatusOK, sendMessageResponse{Count: count})
}

// ListByGroup handles GET /v1/groups/:id/messages
func (h *MessageHandler) ListByGroup(c *gin.Context) {
	messages, err := h.repo.GroupMessages(middleware.GetGroupID(c))
	if err != nil {
		respondError(c, h.logger, err, "failed to list messages")
		return
	}

	c.JSON(http.StatusOK, messages)
}

// searchQuery binds GET /v1/messages/search?start=...&end=...&k=...
//
// start and end are RFC 3339 timestamps and are both exclusive.
type searchQuery struct {
	Start time.Time `form:"start" binding:"required"`
	End   time.Time `form:"end" binding:"required"`
	K     int       `form:"k" binding:"required,min=1"`
}

type searchResponse struct {
	Content string `json:"content"`
}

// Search handles GET /v1/messages/search
//
// Returns the k-th earliest sent message in the window, counting from 1.
func (h *MessageHandler) Search(c *gin.Context) {
	var q searchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content, err := h.repo.FindMessage(q.Start, q.End, q.K)
	if err != nil {
		respondError(c, h.logger, err, "failed to search messages")
		return
	}

	c.JSON(http.StatusOK, searchResponse{Content: content})
}
