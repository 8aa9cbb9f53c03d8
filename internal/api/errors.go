package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lalith-99/chatbook/internal/repository"
	"go.uber.org/zap"
)

// statusFor maps directory errors to HTTP status codes.
// Anything not listed is a bug on our side and becomes a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, repository.ErrInvalidArgument),
		errors.Is(err, repository.ErrTooFewMembers):
		return http.StatusBadRequest

	case errors.Is(err, repository.ErrUserNotRegistered),
		errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, repository.ErrGroupNotFound),
		errors.Is(err, repository.ErrMessageNotFound):
		return http.StatusNotFound

	case errors.Is(err, repository.ErrDuplicateContact),
		errors.Is(err, repository.ErrDuplicateName),
		errors.Is(err, repository.ErrAlreadySent),
		errors.Is(err, repository.ErrCannotRemoveAdmin):
		return http.StatusConflict

	case errors.Is(err, repository.ErrNotAMember),
		errors.Is(err, repository.ErrNotAuthorized):
		return http.StatusForbidden

	case errors.Is(err, repository.ErrNotAParticipant),
		errors.Is(err, repository.ErrInsufficientMessages):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// respondError writes the error response. Known directory errors carry
// their message to the client. Unknown ones are logged and hidden behind
// the generic msg.
func respondError(c *gin.Context, logger *zap.Logger, err error, msg string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error(msg, zap.Error(err))
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
