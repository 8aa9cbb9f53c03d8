package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Context keys for values stored in gin.Context.
const (
	ContextKeyRequestID = "request_id"
	ContextKeyGroupID   = "group_id"
)

const HeaderRequestID = "X-Request-ID"

// RequestLogger tags each request with an ID and logs it through zap once
// the handler chain has finished. It replaces gin.Logger() so request logs
// share the process logger's encoder and level.
//
// An incoming X-Request-ID is reused so a caller can correlate its own logs.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(ContextKeyRequestID, requestID)
		c.Header(HeaderRequestID, requestID)

		c.Next()

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			logger.Error("request failed", fields...)
		case status >= http.StatusBadRequest:
			logger.Warn("request rejected", fields...)
		default:
			logger.Info("request served", fields...)
		}
	}
}

// GroupParam parses the :id path parameter as a group handle. Requests
// with a malformed ID never reach the handler.
func GroupParam() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "invalid group id",
			})
			return
		}
		c.Set(ContextKeyGroupID, id)
		c.Next()
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(ContextKeyRequestID)
}

// GetGroupID returns the group handle set by GroupParam, or uuid.Nil if the
// route isn't behind GroupParam. uuid.Nil never matches a real group, so a
// missing middleware shows up as a 404 rather than a panic.
func GetGroupID(c *gin.Context) uuid.UUID {
	val, exists := c.Get(ContextKeyGroupID)
	if !exists {
		return uuid.Nil
	}
	id, ok := val.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}
