package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SystemHandler serves health and metadata endpoints
type SystemHandler struct {
	BaseHandler
	appName string
	env     string
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(appName, env string) *SystemHandler {
	return &SystemHandler{appName: appName, env: env}
}

// Health reports service liveness. It is mounted directly on the engine,
// ahead of the auth middleware, so probes need no token.
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"app":    h.appName,
		"env":    h.env,
	})
}
