package context

import (
	"context"
	"strings"
)

// Gin keys handlers set so request middleware can report the outcome.
const (
	KeyRequestID      = "request_id"
	KeyInvoiceID      = "invoice_id"
	KeyEmailSent      = "email_sent"
	KeyRateLimitScope = "ratelimit_scope"
	KeyRateLimited    = "ratelimited"
)

type requestIDKey struct{}

// WithRequestID stores the request identifier on ctx.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext returns the request identifier or an empty string.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(requestIDKey{}).(string)
	return value
}

// IsOpsPath reports health probe and metrics scrape paths.
func IsOpsPath(path string) bool {
	path = strings.TrimSpace(path)
	return strings.EqualFold(path, "/metrics") || strings.HasPrefix(path, "/health")
}
