package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"strings"

	redis "github.com/redis/go-redis/v9"
	"github.com/smallbiznis/leadflow/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const keyClientScope = "ratelimit:%s:%s"

// Limiter throttles expensive endpoints per client. A nil or disabled
// Limiter allows everything.
type Limiter struct {
	client *redis.Client
	bucket *TokenBucket
	rate   float64
	burst  int
}

func NewRedisClient(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) (*redis.Client, error) {
	limitCfg := cfg.RateLimit
	if !limitCfg.Enabled {
		return nil, nil
	}

	addr := strings.TrimSpace(limitCfg.RedisAddr)
	if addr == "" {
		return nil, errors.New("rate limit redis addr is required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: strings.TrimSpace(limitCfg.RedisPassword),
		DB:       limitCfg.RedisDB,
	})

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})
	log.Info("rate limiting enabled", zap.String("redis_addr", addr))
	return client, nil
}

func NewLimiter(cfg config.Config, client *redis.Client) (*Limiter, error) {
	if client == nil {
		return nil, nil
	}
	if cfg.RateLimit.Rate <= 0 || cfg.RateLimit.Burst <= 0 {
		return nil, fmt.Errorf("%w: rate %d burst %d", ErrInvalidRate, cfg.RateLimit.Rate, cfg.RateLimit.Burst)
	}
	return &Limiter{
		client: client,
		bucket: NewTokenBucket(client),
		rate:   float64(cfg.RateLimit.Rate),
		burst:  int(cfg.RateLimit.Burst),
	}, nil
}

func (l *Limiter) Enabled() bool {
	return l != nil && l.bucket != nil
}

// Allow spends one token of clientKey's budget for scope.
func (l *Limiter) Allow(ctx context.Context, scope, clientKey string) (*Result, error) {
	if !l.Enabled() {
		return &Result{Allowed: true}, nil
	}
	scope, clientKey = strings.TrimSpace(scope), strings.TrimSpace(clientKey)
	if scope == "" || clientKey == "" {
		return nil, ErrInvalidKey
	}
	return l.bucket.Allow(ctx, fmt.Sprintf(keyClientScope, scope, clientKey), l.rate, l.burst)
}

// Ping checks the backing store for readiness probes.
func (l *Limiter) Ping(ctx context.Context) error {
	if !l.Enabled() || l.client == nil {
		return nil
	}
	return l.client.Ping(ctx).Err()
}
