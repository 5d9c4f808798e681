package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Trigger launches a batch run without blocking the caller.
type Trigger interface {
	RunAsync() uuid.UUID
}

// New builds the operator-facing HTTP router. The batch endpoint always
// acknowledges immediately; completion is observed through side effects.
func New(trigger Trigger, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.POST("/batch", func(c *gin.Context) {
		runID := trigger.RunAsync()
		logger.Info("batch triggered", "run_id", runID.String(), "remote", c.ClientIP())
		c.JSON(http.StatusAccepted, gin.H{
			"status": "accepted",
			"run_id": runID.String(),
		})
	})

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
