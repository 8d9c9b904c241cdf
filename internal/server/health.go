package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/leadflow/internal/observability/logger"
	"go.uber.org/zap"
)

const readinessTimeout = 2 * time.Second

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": s.cfg.AppName,
		"version": s.cfg.AppVersion,
	})
}

func (s *Server) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready reports unavailable while the rate limit store is unreachable.
func (s *Server) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	if err := s.limiter.Ping(ctx); err != nil {
		logger.FromContext(ctx).Warn("readiness check failed", zap.String("check", "redis"), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"checks": gin.H{"redis": "down"},
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
