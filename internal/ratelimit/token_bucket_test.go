package ratelimit

import (
	"context"
	"testing"
	"time"

	redis "github.com/redis/go-redis/v9"
	"github.com/smallbiznis/leadflow/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// offlineClient never dials until a command runs.
func offlineClient(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestParseResult(t *testing.T) {
	cases := []struct {
		name      string
		res       []any
		allowed   bool
		remaining int
		retry     time.Duration
	}{
		{"allowed", []any{int64(1), "4.5", int64(1700000000000)}, true, 4, 0},
		{"denied empty", []any{int64(0), "0", int64(1700000000000)}, false, 0, 500 * time.Millisecond},
		{"denied partial", []any{int64(0), "0.5", int64(1700000000000)}, false, 0, 250 * time.Millisecond},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseResult(tc.res, 2, 5)
			require.NoError(t, err)
			assert.Equal(t, tc.allowed, got.Allowed)
			assert.Equal(t, tc.remaining, got.Remaining)
			assert.Equal(t, 5, got.Limit)
			assert.Equal(t, tc.retry, got.RetryAfter)
		})
	}

	_, err := parseResult([]any{int64(1)}, 2, 5)
	assert.Error(t, err)
}

func TestBucketTTL(t *testing.T) {
	assert.Equal(t, 20*time.Second, bucketTTL(2, 20))
	assert.Equal(t, time.Second, bucketTTL(100, 1))
	assert.Equal(t, time.Second, bucketTTL(0, 5))
}

func TestNilTokenBucket(t *testing.T) {
	var tb *TokenBucket
	_, err := tb.Allow(context.Background(), "k", 1, 1)
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Nil(t, NewTokenBucket(nil))
}

func TestTokenBucketRejectsBadArguments(t *testing.T) {
	tb := NewTokenBucket(offlineClient(t))

	tests := []struct {
		name  string
		key   string
		rate  float64
		burst int
		want  error
	}{
		{name: "empty key", key: "", rate: 1, burst: 1, want: ErrInvalidKey},
		{name: "zero rate", key: "k", rate: 0, burst: 1, want: ErrInvalidRate},
		{name: "zero burst", key: "k", rate: 1, burst: 0, want: ErrInvalidRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tb.Allow(context.Background(), tt.key, tt.rate, tt.burst)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewLimiterRejectsNonPositiveRate(t *testing.T) {
	cfg := config.Config{RateLimit: config.RateLimitConfig{Rate: 0, Burst: 10}}
	_, err := NewLimiter(cfg, offlineClient(t))
	assert.ErrorIs(t, err, ErrInvalidRate)

	l, err := NewLimiter(cfg, nil)
	require.NoError(t, err)
	assert.Nil(t, l)
}

func TestLimiterRejectsBlankClientKey(t *testing.T) {
	l, err := NewLimiter(config.Config{RateLimit: config.RateLimitConfig{Rate: 5, Burst: 20}}, offlineClient(t))
	require.NoError(t, err)
	require.True(t, l.Enabled())

	_, err = l.Allow(context.Background(), "invoice", "  ")
	assert.ErrorIs(t, err, ErrInvalidKey)

	_, err = l.Allow(context.Background(), "", "127.0.0.1")
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestDisabledLimiterAllows(t *testing.T) {
	var l *Limiter
	assert.False(t, l.Enabled())

	res, err := l.Allow(context.Background(), "invoice", "127.0.0.1")
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.NoError(t, l.Ping(context.Background()))
}

func TestNilDeduperTreatsUpdatesAsNew(t *testing.T) {
	var d *UpdateDeduper
	first, err := d.FirstSeen(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, first)
	assert.Nil(t, NewUpdateDeduper(nil))
}
