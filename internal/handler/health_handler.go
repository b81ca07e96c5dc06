package handler

import (
	"net/http"

	"eaglehub/internal/service"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	realtime *service.RealtimeService // nil in local-only mode
}

func NewHealthHandler(realtime *service.RealtimeService) *HealthHandler {
	return &HealthHandler{realtime: realtime}
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// FirebaseProbe writes a heartbeat to the remote database and reports the
// outcome. Operational utility for the console's diagnostics panel.
func (h *HealthHandler) FirebaseProbe(c *gin.Context) {
	ok, msg := h.realtime.Ping(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"success": ok, "message": msg})
}
