package httperr

import (
	"log/slog"
	"net/http"

	"event-marketplace/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// StatusOf maps a marked error kind to its HTTP status; unmarked errors are 500.
func StatusOf(err error) int {
	switch {
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrForbidden), errs.Is(err, errs.ErrRoleNotPermitted):
		return http.StatusForbidden
	case errs.Is(err, errs.ErrInvalidTransition), errs.Is(err, errs.ErrInvalidState):
		return http.StatusUnprocessableEntity
	case errs.Is(err, errs.ErrAlreadyExists), errs.Is(err, errs.ErrAlreadySigned), errs.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// AbortWithUseCaseError classifies err and aborts. Internal errors are logged
// with their stack and answered with a generic message.
func AbortWithUseCaseError(c *gin.Context, err error, msg string) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), msg,
			"error", err.Error(),
			"path", c.Request.URL.Path,
			"stack", errs.ExtractStackLines(err, 12),
		)
		AbortWithError(c, status, err, "Internal server error", nil)
		return
	}
	AbortWithError(c, status, err, msg, gin.H{
		"kind":   errs.Kind(err),
		"reason": err.Error(),
	})
}
