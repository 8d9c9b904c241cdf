package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/leadflow/internal/observability/logger"
	"github.com/smallbiznis/leadflow/internal/providers/telegram"
	"go.uber.org/zap"
)

func (s *Server) TelegramWebhook(c *gin.Context) {
	var update telegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	ctx := c.Request.Context()
	if err := s.bot.HandleUpdate(ctx, update); err != nil {
		logger.FromContext(ctx).Error("telegram webhook failed",
			zap.Int64("update_id", update.UpdateID),
			zap.Error(err),
		)
		AbortWithError(c, operationFailed(msgWebhookFailed, err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) TelegramInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":     "Telegram Bot API is running",
		"webhook_url": s.cfg.AppURL + "/api/telegram",
	})
}
