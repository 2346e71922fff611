// util/http_util.go
package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	logger "github.com/snipvault/api/logging"
)

// APIResponse is the envelope every endpoint returns through, so the
// response shape is always consistent.
type APIResponse struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Errors     interface{} `json:"errors,omitempty"`
	StatusCode int         `json:"status_code"`
}

func RespondSuccess(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, APIResponse{
		Success:    true,
		Message:    message,
		Data:       data,
		StatusCode: code,
	})
}

func RespondCreated(c *gin.Context, message string, data interface{}) {
	RespondSuccess(c, http.StatusCreated, message, data)
}

func RespondWithError(c *gin.Context, code int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))
	c.JSON(code, APIResponse{
		Success:    false,
		Message:    message,
		Errors:     err.Error(),
		StatusCode: code,
	})
}

// GetOwnerIDFromContext returns the authenticated user's id placed in
// the context by the auth middleware.
func GetOwnerIDFromContext(c *gin.Context) (int64, bool) {
	val, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	ownerID, ok := val.(int64)
	return ownerID, ok
}

// GetRoleFromContext returns the authenticated user's role, or an
// empty string when unauthenticated.
func GetRoleFromContext(c *gin.Context) string {
	val, exists := c.Get("userRole")
	if !exists {
		return ""
	}
	role, _ := val.(string)
	return role
}
