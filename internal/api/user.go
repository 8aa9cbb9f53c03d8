package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lalith-99/chatbook/internal/repository"
	"go.uber.org/zap"
)

// UserHandler handles user registration and removal.
type UserHandler struct {
	repo   repository.UserRepository
	logger *zap.Logger
}

func NewUserHandler(repo repository.UserRepository, logger *zap.Logger) *UserHandler {
	return &UserHandler{repo: repo, logger: logger}
}

type registerUserRequest struct {
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact" binding:"required"`
}

// Register handles POST /v1/users
func (h *UserHandler) Register(c *gin.Context) {
	var req registerUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.repo.RegisterUser(req.Name, req.Contact)
	if err != nil {
		respondError(c, h.logger, err, "failed to register user")
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Get handles GET /v1/users/:name
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.repo.GetUser(c.Param("name"))
	if err != nil {
		respondError(c, h.logger, err, "failed to get user")
		return
	}

	c.JSON(http.StatusOK, user)
}

// removeUserResponse carries the sum RemoveUser returns:
// members left in the group + messages left in the group + sent messages left overall.
type removeUserResponse struct {
	Result int `json:"result"`
}

// Remove handles DELETE /v1/users/:name
//
// Only non-admin members can be removed. An admin has to hand over rights
// first (POST /v1/groups/:id/admin), otherwise this returns 409.
func (h *UserHandler) Remove(c *gin.Context) {
	result, err := h.repo.RemoveUser(c.Param("name"))
	if err != nil {
		respondError(c, h.logger, err, "failed to remove user")
		return
	}

	c.JSON(http.StatusOK, removeUserResponse{Result: result})
}
