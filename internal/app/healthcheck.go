package app

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vk/appweave/internal/ctxlog"
)

// healthHandler answers liveness probes.
func healthHandler(c *gin.Context) {
	ctxlog.FromContext(c.Request.Context()).Debug("Health check endpoint hit.", "remote_addr", c.Request.RemoteAddr)
	c.String(http.StatusOK, "OK")
}
