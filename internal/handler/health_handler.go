package handler

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

const serviceName = "autoledger"

// Pinger is the database reachability check the readiness probe depends on.
// *sqlx.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler creates a HealthHandler probing the given database.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Liveness handles GET /healthz. It answers as long as the process serves
// requests; no dependencies are checked.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": serviceName})
}

// Readiness handles GET /readyz. The service is ready only when the
// statement archive database is reachable.
func (h *HealthHandler) Readiness(c *gin.Context) {
	if err := h.db.PingContext(c.Request.Context()); err != nil {
		log.Printf("handler.HealthHandler: readiness ping failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unavailable",
			"service":  serviceName,
			"database": "unreachable",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": serviceName})
}
