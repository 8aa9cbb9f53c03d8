package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lalith-99/chatbook/internal/middleware"
	"github.com/lalith-99/chatbook/internal/repository"
	"go.uber.org/zap"
)

// GroupHandler handles group creation and lookup.
type GroupHandler struct {
	repo   repository.GroupRepository
	logger *zap.Logger
}

func NewGroupHandler(repo repository.GroupRepository, logger *zap.Logger) *GroupHandler {
	return &GroupHandler{repo: repo, logger: logger}
}

// createGroupRequest is the JSON body for POST /v1/groups.
//
// Members are user names. Order matters: the first one becomes the admin,
// and for a two-person chat the second one names the group.
type createGroupRequest struct {
	Members []string `json:"members" binding:"required,min=2,dive,required"`
}

// Create handles POST /v1/groups
func (h *GroupHandler) Create(c *gin.Context) {
	var req createGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := h.repo.CreateGroup(req.Members)
	if err != nil {
		respondError(c, h.logger, err, "failed to create group")
		return
	}

	c.JSON(http.StatusCreated, group)
}

// List handles GET /v1/groups
func (h *GroupHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.repo.ListGroups())
}

// GetByID handles GET /v1/groups/:id
func (h *GroupHandler) GetByID(c *gin.Context) {
	group, err := h.repo.GetGroup(middleware.GetGroupID(c))
	if err != nil {
		respondError(c, h.logger, err, "failed to get group")
		return
	}

	c.JSON(http.StatusOK, group)
}
