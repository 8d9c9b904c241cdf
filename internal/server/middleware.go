package server

import (
	"crypto/subtle"
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	obscontext "github.com/smallbiznis/leadflow/internal/observability/context"
	"github.com/smallbiznis/leadflow/internal/observability/logger"
	"go.uber.org/zap"
)

const headerTelegramSecret = "X-Telegram-Bot-Api-Secret-Token"

// Rate limit scopes, one bucket per client and scope.
const (
	scopeInvoice  = "invoice"
	scopeLeads    = "leads"
	scopeMessages = "messages"
)

// RateLimit spends one token of the client's budget for scope. Limiter
// failures answer 503 rather than letting traffic through unmetered.
func (s *Server) RateLimit(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.limiter.Enabled() {
			c.Next()
			return
		}

		c.Set(obscontext.KeyRateLimitScope, scope)
		ctx := c.Request.Context()
		res, err := s.limiter.Allow(ctx, scope, c.ClientIP())
		if err != nil {
			logger.FromContext(ctx).Warn("rate limit check failed", zap.String("scope", scope), zap.Error(err))
			AbortWithError(c, ErrServiceUnavailable)
			return
		}
		if !res.Allowed {
			logger.FromContext(ctx).Warn("rate limit exceeded",
				zap.String("scope", scope),
				zap.String("client_ip", c.ClientIP()),
			)
			s.metrics.RecordRateLimitDenied(scope)
			c.Set(obscontext.KeyRateLimited, true)

			c.Header("Retry-After", strconv.Itoa(retryAfterSeconds(res.RetryAfter.Seconds())))
			c.Header("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			c.Header("X-RateLimit-Remaining", "0")
			AbortWithError(c, ErrRateLimited)
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(res.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
		c.Next()
	}
}

// TelegramSecret rejects webhook calls without the configured secret token.
// With no secret configured every call passes.
func (s *Server) TelegramSecret() gin.HandlerFunc {
	secret := strings.TrimSpace(s.cfg.Telegram.WebhookSecret)
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}
		got := c.GetHeader(headerTelegramSecret)
		if subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
			AbortWithError(c, ErrUnauthorized)
			return
		}
		c.Next()
	}
}

func retryAfterSeconds(seconds float64) int {
	if seconds <= 1 {
		return 1
	}
	return int(math.Ceil(seconds))
}
