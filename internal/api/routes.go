package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lalith-99/chatbook/internal/middleware"
	"github.com/lalith-99/chatbook/internal/repository"
	"go.uber.org/zap"
)

// RegisterRoutes mounts the health check and every /v1 route on r.
func RegisterRoutes(r gin.IRouter, dir repository.Directory, logger *zap.Logger) {
	users := NewUserHandler(dir, logger)
	groups := NewGroupHandler(dir, logger)
	membership := NewMembershipHandler(dir, logger)
	messages := NewMessageHandler(dir, logger)

	r.GET("/v1/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	v1 := r.Group("/v1")

	v1.POST("/users", users.Register)
	v1.GET("/users/:name", users.Get)
	v1.DELETE("/users/:name", users.Remove)

	v1.POST("/groups", groups.Create)
	v1.GET("/groups", groups.List)

	group := v1.Group("/groups/:id", middleware.GroupParam())
	group.GET("", groups.GetByID)
	group.POST("/admin", membership.ChangeAdmin)
	group.POST("/messages", messages.Send)
	group.GET("/messages", messages.ListByGroup)

	v1.POST("/messages", messages.Create)
	v1.GET("/messages/search", messages.Search)
	v1.GET("/messages/:id", messages.Get)
}
