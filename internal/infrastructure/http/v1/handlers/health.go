package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger checks a backing store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// StatsProvider reports row counts of the configuration tables.
type StatsProvider interface {
	Stats() map[string]int
}

// HealthHandler provides health check endpoints.
type HealthHandler struct {
	db    Pinger
	stats StatsProvider
}

// NewHealthHandler creates a new health handler. db may be nil.
func NewHealthHandler(db Pinger, stats StatsProvider) *HealthHandler {
	return &HealthHandler{db: db, stats: stats}
}

// Live handles liveness probe (is the process alive?).
// GET /health/live
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Ready handles readiness probe (is the service ready to accept traffic?).
// GET /health/ready
func (h *HealthHandler) Ready(c *gin.Context) {
	checks := map[string]string{"database": "not configured"}

	if h.db != nil {
		if err := h.db.Ping(c.Request.Context()); err != nil {
			checks["database"] = "unhealthy: " + err.Error()
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "error",
				"checks": checks,
			})
			return
		}
		checks["database"] = "healthy"
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"checks": checks,
		"tables": h.stats.Stats(),
	})
}
