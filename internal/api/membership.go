package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lalith-99/chatbook/internal/middleware"
	"github.com/lalith-99/chatbook/internal/repository"
	"go.uber.org/zap"
)

// MembershipHandler handles admin rights within a group.
type MembershipHandler struct {
	repo   repository.GroupRepository
	logger *zap.Logger
}

func NewMembershipHandler(repo repository.GroupRepository, logger *zap.Logger) *MembershipHandler {
	return &MembershipHandler{repo: repo, logger: logger}
}

// changeAdminRequest is the JSON body for POST /v1/groups/:id/admin
//
// Approver must be the current admin. User must already be a member.
type changeAdminRequest struct {
	Approver string `json:"approver" binding:"required"`
	User     string `json:"user" binding:"required"`
}

// ChangeAdmin handles POST /v1/groups/:id/admin
func (h *MembershipHandler) ChangeAdmin(c *gin.Context) {
	var req changeAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.repo.ChangeAdmin(req.Approver, req.User, middleware.GetGroupID(c))
	if err != nil {
		respondError(c, h.logger, err, "failed to change admin")
		return
	}

	c.Status(http.StatusNoContent)
}
