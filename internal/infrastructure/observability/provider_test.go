package observability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"

	"github.com/hotelhub/hotel-booking/internal/config"
)

func TestFromConfig(t *testing.T) {
	cfg := config.Defaults()
	cfg.Observability.TracingEnabled = true
	cfg.Observability.PIILevel = "none"

	got := FromConfig(cfg, "1.2.3")

	assert.Equal(t, "hotel-cli", got.ServiceName)
	assert.Equal(t, "1.2.3", got.ServiceVersion)
	assert.True(t, got.TracingEnabled)
	assert.False(t, got.MetricsEnabled)
	assert.Equal(t, "none", got.PIILevel)
	assert.Positive(t, got.TraceBatchTimeout)
	assert.Contains(t, got.ResourceAttrs, attribute.String("hotel.cache.backend", "memory"))
	assert.Contains(t, got.ResourceAttrs, attribute.Int("hotel.page_size", 6))
	assert.Contains(t, got.ResourceAttrs, attribute.String("hotel.pii_level", "none"))
}

func TestParseEndpoint(t *testing.T) {
	tests := []struct {
		endpoint string
		want     otlpTarget
	}{
		{"localhost:4318", otlpTarget{host: "localhost:4318", insecure: true}},
		{"http://collector:4318", otlpTarget{host: "collector:4318", insecure: true}},
		{"https://otel.example.com/", otlpTarget{host: "otel.example.com"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseEndpoint(tt.endpoint), tt.endpoint)
	}
}

func TestInitDisabledUsesGlobalProviders(t *testing.T) {
	p, err := Init(context.Background(), FromConfig(config.Defaults(), "test"))
	require.NoError(t, err)

	assert.NotNil(t, p.Tracer)
	assert.NotNil(t, p.Meter)
	assert.Nil(t, p.TracerProvider)
	assert.Nil(t, p.MeterProvider)
	assert.False(t, p.Enabled())
	assert.Len(t, p.Sanitizer.SanitizeUserID("42"), 8)
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestInitTracingStartsProvider(t *testing.T) {
	cfg := FromConfig(config.Defaults(), "test")
	cfg.TracingEnabled = true

	p, err := Init(context.Background(), cfg)
	require.NoError(t, err)
	require.NotNil(t, p.TracerProvider)
	assert.True(t, p.Enabled())

	_, span := p.Tracer.Start(context.Background(), "hotel lookup")
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	// Nothing listens on the collector endpoint, so the flush error is ignored.
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_ = p.Shutdown(ctx)
	assert.False(t, p.Enabled())
	assert.NoError(t, p.Shutdown(ctx))
}
