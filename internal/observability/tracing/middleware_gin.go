package tracing

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	obscontext "github.com/smallbiznis/leadflow/internal/observability/context"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// GinMiddleware opens a server span per request. Once the handler returns,
// the span is tagged with the invoice and rate-limit outcome left on the gin
// context. Health probes and metric scrapes are not traced.
func GinMiddleware() gin.HandlerFunc {
	tracer := otel.Tracer("leadflow/http")
	return func(c *gin.Context) {
		if obscontext.IsOpsPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		method := strings.ToUpper(c.Request.Method)
		ctx := ExtractContext(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))
		ctx, span := tracer.Start(ctx, spanName(method, ""),
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", method),
				attribute.String("http.target", c.Request.URL.Path),
			),
		)
		defer span.End()

		if requestID := obscontext.RequestIDFromContext(ctx); requestID != "" {
			span.SetAttributes(attribute.String("request_id", requestID))
		}

		c.Request = c.Request.WithContext(ctx)
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}
		status := c.Writer.Status()

		span.SetName(spanName(method, route))
		attrs := []attribute.KeyValue{
			attribute.String("http.route", route),
			attribute.Int("http.status_code", status),
			attribute.Int64("http.server_duration_ms", time.Since(start).Milliseconds()),
		}
		attrs = append(attrs, outcomeAttributes(c)...)
		span.SetAttributes(SafeAttributes(attrs...)...)

		switch {
		case status >= http.StatusInternalServerError:
			if lastErr := c.Errors.Last(); lastErr != nil {
				if safeErr := SafeError(lastErr.Err); safeErr != nil {
					span.RecordError(safeErr)
				}
			}
			span.SetStatus(codes.Error, "request error")
		case status == http.StatusTooManyRequests:
			span.AddEvent("rate_limited")
		}
	}
}

func spanName(method, route string) string {
	if route == "" {
		return "HTTP " + method
	}
	return "HTTP " + method + " " + route
}

func outcomeAttributes(c *gin.Context) []attribute.KeyValue {
	var attrs []attribute.KeyValue
	if invoiceID := strings.TrimSpace(c.GetString(obscontext.KeyInvoiceID)); invoiceID != "" {
		attrs = append(attrs, attribute.String("invoice.id", invoiceID))
	}
	if sent, ok := c.Get(obscontext.KeyEmailSent); ok {
		if emailed, ok := sent.(bool); ok {
			attrs = append(attrs, attribute.Bool("invoice.email_sent", emailed))
		}
	}
	if scope := c.GetString(obscontext.KeyRateLimitScope); scope != "" {
		attrs = append(attrs,
			attribute.String("ratelimit.scope", scope),
			attribute.Bool("ratelimit.denied", c.GetBool(obscontext.KeyRateLimited)),
		)
	}
	return attrs
}
