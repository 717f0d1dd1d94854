package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reachlab/geodash/internal/application/dashboard"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	svc *dashboard.Service
}

func NewHealthHandler(svc *dashboard.Service) *HealthHandler {
	return &HealthHandler{svc: svc}
}

// Healthz reports process liveness.
func (h *HealthHandler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readyz reports whether a snapshot has been published; the service cannot
// answer queries before that.
func (h *HealthHandler) Readyz(c *gin.Context) {
	snap, err := h.svc.Snapshot()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "ready",
		"version":  snap.Version,
		"built_at": snap.BuiltAt,
	})
}
