package ratelimit

import (
	"context"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"
)

const (
	keyTelegramUpdate = "telegram:update:%d"
	updateSeenTTL     = 24 * time.Hour
)

// UpdateDeduper remembers webhook update ids so redelivered updates are
// handled once.
type UpdateDeduper struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewUpdateDeduper(client redis.Cmdable) *UpdateDeduper {
	if client == nil {
		return nil
	}
	return &UpdateDeduper{client: client, ttl: updateSeenTTL}
}

// FirstSeen claims updateID. It reports false when the id was already
// claimed. A nil deduper treats every update as new.
func (d *UpdateDeduper) FirstSeen(ctx context.Context, updateID int64) (bool, error) {
	if d == nil || d.client == nil {
		return true, nil
	}
	return d.client.SetNX(ctx, fmt.Sprintf(keyTelegramUpdate, updateID), 1, d.ttl).Result()
}
