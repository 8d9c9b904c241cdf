package tracing

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestSafeAttributesDropsPersonalData(t *testing.T) {
	attrs := SafeAttributes(
		attribute.String("invoice.id", "INV-1"),
		attribute.String("client.email", "a@b.c"),
		attribute.String("", "x"),
	)

	if assert.Len(t, attrs, 1) {
		assert.Equal(t, attribute.Key("invoice.id"), attrs[0].Key)
	}
}

func TestSafeError(t *testing.T) {
	assert.Nil(t, SafeError(nil))

	wrapped := fmt.Errorf("render_failed: %w", errors.New("font missing at /tmp/x"))
	assert.EqualError(t, SafeError(wrapped), "render_failed")
}
