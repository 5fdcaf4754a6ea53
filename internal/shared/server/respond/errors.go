package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"photoapp-backend/internal/shared/telemetry"
)

// ClientError logs and writes a 400 response with the operation's fixed
// error payload.
func ClientError(c *gin.Context, message string, payload interface{}) {
	telemetry.Warn("http.client_error", map[string]any{
		"status":     http.StatusBadRequest,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})
	c.AbortWithStatusJSON(http.StatusBadRequest, payload)
}

// ServerError logs the underlying error and writes a 500 response with the
// operation's fixed error payload. The payload carries the error message on
// the wire; kind preserves the internal error classification in logs.
func ServerError(c *gin.Context, kind string, err error, payload interface{}) {
	telemetry.Error("http.server_error", map[string]any{
		"status":     http.StatusInternalServerError,
		"kind":       kind,
		"error":      err.Error(),
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})
	c.AbortWithStatusJSON(http.StatusInternalServerError, payload)
}
