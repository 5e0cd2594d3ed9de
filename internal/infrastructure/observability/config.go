package observability

import (
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/hotelhub/hotel-booking/internal/config"
)

// Config wraps the observability settings of the client.
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	TracingEnabled bool
	MetricsEnabled bool
	OTLPEndpoint   string
	OTLPHeaders    map[string]string
	SamplingRate   float64 // 0.0 - 1.0
	PIILevel       string  // none|hashed|full

	TraceBatchTimeout time.Duration
	MetricInterval    time.Duration
	ResourceAttrs     []attribute.KeyValue
}

// FromConfig maps the loaded client configuration onto provider settings.
func FromConfig(cfg *config.Config, version string) Config {
	return Config{
		ServiceName:       cfg.ServiceName,
		ServiceVersion:    version,
		Environment:       cfg.Environment,
		TracingEnabled:    cfg.Observability.TracingEnabled,
		MetricsEnabled:    cfg.Observability.MetricsEnabled,
		OTLPEndpoint:      cfg.Observability.OTLPEndpoint,
		SamplingRate:      cfg.Observability.SamplingRate,
		PIILevel:          cfg.Observability.PIILevel,
		TraceBatchTimeout: 5 * time.Second,
		MetricInterval:    15 * time.Second,
		ResourceAttrs: []attribute.KeyValue{
			attribute.String("hotel.cache.backend", cfg.Cache.Backend),
			attribute.Int("hotel.page_size", cfg.Pagination.PageSize),
			attribute.String("hotel.pii_level", cfg.Observability.PIILevel),
		},
	}
}
