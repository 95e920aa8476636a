package router

import (
	"github.com/gin-gonic/gin"

	"autoledger/internal/config"
	"autoledger/internal/handler"
	"autoledger/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	statementH *handler.StatementHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Statement processing and archive
	statements := v1.Group("/statements")
	statements.POST("/process", statementH.Process)
	statements.GET("", statementH.List)
	statements.GET("/:id", statementH.GetByID)
	statements.GET("/:id/export", statementH.Export)
	statements.DELETE("/:id", statementH.Delete)

	// Supported bank profiles
	v1.GET("/banks", statementH.Banks)

	return r
}
