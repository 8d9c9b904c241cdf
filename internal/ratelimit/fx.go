package ratelimit

import (
	redis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var Module = fx.Module("rate.limit",
	fx.Provide(NewRedisClient),
	fx.Provide(NewLimiter),
	fx.Provide(func(client *redis.Client) *UpdateDeduper {
		if client == nil {
			return nil
		}
		return NewUpdateDeduper(client)
	}),
)
