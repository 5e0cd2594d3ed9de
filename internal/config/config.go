package config

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"
)

// Config holds the configuration of the hotel booking client.
type Config struct {
	ServiceName string `yaml:"service_name" json:"service_name" env:"SERVICE_NAME" jsonschema:"description=Name reported in logs and telemetry"`
	Environment string `yaml:"environment" json:"environment" env:"ENVIRONMENT" jsonschema:"enum=development,enum=staging,enum=production"`
	LogLevel    string `yaml:"log_level" json:"log_level" env:"LOG_LEVEL" jsonschema:"enum=debug,enum=info,enum=warn,enum=error"`

	Services      ServicesConfig      `yaml:"services" json:"services"`
	HTTP          HTTPConfig          `yaml:"http" json:"http"`
	Pagination    PaginationConfig    `yaml:"pagination" json:"pagination"`
	Cache         CacheConfig         `yaml:"cache" json:"cache"`
	Observability ObservabilityConfig `yaml:"observability" json:"observability"`
}

// ServicesConfig holds the base URL of every backend the client talks to.
type ServicesConfig struct {
	HotelURL        string `yaml:"hotel_url" json:"hotel_url" env:"HOTEL_BASE_URL" jsonschema:"format=uri"`
	UserURL         string `yaml:"user_url" json:"user_url" env:"USER_BASE_URL" jsonschema:"format=uri"`
	BookingURL      string `yaml:"booking_url" json:"booking_url" env:"BOOKING_BASE_URL" jsonschema:"format=uri"`
	PaymentURL      string `yaml:"payment_url" json:"payment_url" env:"PAYMENT_BASE_URL" jsonschema:"format=uri"`
	NotificationURL string `yaml:"notification_url" json:"notification_url" env:"NOTIFICATION_BASE_URL" jsonschema:"format=uri"`
}

// HTTPConfig tunes the outbound HTTP clients.
type HTTPConfig struct {
	Timeout    time.Duration `yaml:"timeout" json:"timeout" env:"HTTP_TIMEOUT"`
	RetryCount int           `yaml:"retry_count" json:"retry_count" env:"HTTP_RETRY_COUNT" jsonschema:"minimum=0"`
}

type PaginationConfig struct {
	PageSize int `yaml:"page_size" json:"page_size" env:"PAGE_SIZE" jsonschema:"minimum=1"`
}

// CacheConfig selects the lookup cache. A zero TTL disables it.
type CacheConfig struct {
	Backend  string        `yaml:"backend" json:"backend" env:"CACHE_BACKEND" jsonschema:"enum=memory,enum=redis,enum=noop"`
	Size     int           `yaml:"size" json:"size" env:"CACHE_SIZE" jsonschema:"minimum=1"`
	TTL      time.Duration `yaml:"ttl" json:"ttl" env:"CACHE_TTL"`
	RedisURL string        `yaml:"redis_url" json:"redis_url" env:"REDIS_URL"`
}

type ObservabilityConfig struct {
	TracingEnabled bool    `yaml:"tracing_enabled" json:"tracing_enabled" env:"ENABLE_TRACING"`
	MetricsEnabled bool    `yaml:"metrics_enabled" json:"metrics_enabled" env:"ENABLE_METRICS"`
	OTLPEndpoint   string  `yaml:"otlp_endpoint" json:"otlp_endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	SamplingRate   float64 `yaml:"sampling_rate" json:"sampling_rate" env:"OTEL_SAMPLING_RATE" jsonschema:"minimum=0,maximum=1"`
	PIILevel       string  `yaml:"pii_level" json:"pii_level" env:"PII_LEVEL" jsonschema:"enum=none,enum=hashed,enum=full"`
}

// Defaults returns the built-in configuration, matching a local
// docker-compose deployment of the backend services.
func Defaults() *Config {
	return &Config{
		ServiceName: "hotel-cli",
		Environment: "development",
		LogLevel:    "info",
		Services: ServicesConfig{
			HotelURL:        "http://localhost:8082",
			UserURL:         "http://localhost:8081",
			BookingURL:      "http://localhost:8083",
			PaymentURL:      "http://localhost:8084",
			NotificationURL: "http://localhost:8085",
		},
		HTTP: HTTPConfig{
			Timeout:    10 * time.Second,
			RetryCount: 2,
		},
		Pagination: PaginationConfig{
			PageSize: 6,
		},
		Cache: CacheConfig{
			Backend: "memory",
			Size:    256,
			TTL:     5 * time.Minute,
		},
		Observability: ObservabilityConfig{
			OTLPEndpoint: "localhost:4318",
			SamplingRate: 1.0,
			PIILevel:     "hashed",
		},
	}
}

// Validate checks the loaded configuration for values the client cannot run with.
func (c *Config) Validate() error {
	urls := map[string]string{
		"services.hotel_url":        c.Services.HotelURL,
		"services.user_url":         c.Services.UserURL,
		"services.booking_url":      c.Services.BookingURL,
		"services.payment_url":      c.Services.PaymentURL,
		"services.notification_url": c.Services.NotificationURL,
	}
	for _, path := range sortedKeys(urls) {
		raw := strings.TrimSpace(urls[path])
		if raw == "" {
			return fmt.Errorf("%s is required", path)
		}
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s must be an absolute URL, got %q", path, raw)
		}
	}

	if c.HTTP.Timeout <= 0 {
		return fmt.Errorf("http.timeout must be positive")
	}
	if c.HTTP.RetryCount < 0 {
		return fmt.Errorf("http.retry_count must not be negative")
	}
	if c.Pagination.PageSize < 1 {
		return fmt.Errorf("pagination.page_size must be at least 1")
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must not be negative")
	}
	switch c.Cache.Backend {
	case "memory":
		if c.Cache.TTL > 0 && c.Cache.Size < 1 {
			return fmt.Errorf("cache.size must be at least 1 when caching is enabled")
		}
	case "redis":
		if c.Cache.TTL > 0 && strings.TrimSpace(c.Cache.RedisURL) == "" {
			return fmt.Errorf("cache.redis_url is required for the redis backend")
		}
	case "noop":
	default:
		return fmt.Errorf("cache.backend must be one of memory, redis, noop; got %q", c.Cache.Backend)
	}
	if c.Observability.SamplingRate < 0 || c.Observability.SamplingRate > 1 {
		return fmt.Errorf("observability.sampling_rate must be between 0 and 1")
	}
	switch c.Observability.PIILevel {
	case "none", "hashed", "full":
	default:
		return fmt.Errorf("observability.pii_level must be one of none, hashed, full; got %q", c.Observability.PIILevel)
	}
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
