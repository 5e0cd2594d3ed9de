package observability

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/hotelhub/hotel-booking/internal/infrastructure/telemetry"
)

// Provider holds the tracer, meter and sanitizer handed to the API clients.
// Disabled signals fall back to the global (no-op) providers.
type Provider struct {
	Tracer         trace.Tracer
	Meter          metric.Meter
	TracerProvider *sdktrace.TracerProvider
	MeterProvider  *sdkmetric.MeterProvider
	Sanitizer      *telemetry.Sanitizer

	shutdownFuncs []func(context.Context) error
}

// Init starts the signals cfg enables. With both disabled nothing is
// exported and no collector connection is attempted.
func Init(ctx context.Context, cfg Config) (*Provider, error) {
	p := &Provider{
		Tracer:    otel.Tracer(cfg.ServiceName),
		Meter:     otel.Meter(cfg.ServiceName),
		Sanitizer: telemetry.NewSanitizer(telemetry.PIILevel(cfg.PIILevel), cfg.ServiceName),
	}
	if !cfg.TracingEnabled && !cfg.MetricsEnabled {
		return p, nil
	}

	res, err := newResource(ctx, cfg)
	if err != nil {
		return nil, err
	}
	target := parseEndpoint(cfg.OTLPEndpoint)

	if cfg.TracingEnabled {
		if err := p.startTracing(ctx, cfg, target, res); err != nil {
			return nil, err
		}
	}
	if cfg.MetricsEnabled {
		if err := p.startMetrics(ctx, cfg, target, res); err != nil {
			_ = p.Shutdown(ctx)
			return nil, err
		}
	}
	return p, nil
}

// Enabled reports whether any signal is being exported.
func (p *Provider) Enabled() bool {
	return len(p.shutdownFuncs) > 0
}

// Shutdown flushes and stops every started provider. Later calls are no-ops.
func (p *Provider) Shutdown(ctx context.Context) error {
	funcs := p.shutdownFuncs
	p.shutdownFuncs = nil

	var errs []error
	for _, shutdown := range funcs {
		if err := shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func newResource(ctx context.Context, cfg Config) (*resource.Resource, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
			semconv.DeploymentEnvironment(cfg.Environment),
		),
		resource.WithAttributes(cfg.ResourceAttrs...),
	)
	if err != nil {
		return nil, fmt.Errorf("create telemetry resource: %w", err)
	}
	return res, nil
}

// otlpTarget is the collector address in the host:port form the HTTP
// exporters expect.
type otlpTarget struct {
	host     string
	insecure bool
}

// parseEndpoint accepts "host:port" or a URL. Only an https scheme turns
// TLS on; a bare host talks plain HTTP to a local collector.
func parseEndpoint(endpoint string) otlpTarget {
	switch {
	case strings.HasPrefix(endpoint, "https://"):
		return otlpTarget{host: strings.TrimRight(strings.TrimPrefix(endpoint, "https://"), "/")}
	case strings.HasPrefix(endpoint, "http://"):
		return otlpTarget{host: strings.TrimRight(strings.TrimPrefix(endpoint, "http://"), "/"), insecure: true}
	default:
		return otlpTarget{host: endpoint, insecure: true}
	}
}

func (p *Provider) startTracing(ctx context.Context, cfg Config, target otlpTarget, res *resource.Resource) error {
	opts := []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(target.host),
		otlptracehttp.WithHeaders(cfg.OTLPHeaders),
	}
	if target.insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return fmt.Errorf("create trace exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(cfg.TraceBatchTimeout)),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SamplingRate))),
	)
	p.TracerProvider = tp
	p.Tracer = tp.Tracer(cfg.ServiceName)
	p.shutdownFuncs = append(p.shutdownFuncs, tp.Shutdown)

	otel.SetTracerProvider(tp)
	// Backends read X-Request-ID; trace context rides alongside it.
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return nil
}

func (p *Provider) startMetrics(ctx context.Context, cfg Config, target otlpTarget, res *resource.Resource) error {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(target.host),
		otlpmetrichttp.WithHeaders(cfg.OTLPHeaders),
	}
	if target.insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return fmt.Errorf("create metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(cfg.MetricInterval))),
		sdkmetric.WithResource(res),
	)
	p.MeterProvider = mp
	p.Meter = mp.Meter(cfg.ServiceName)
	p.shutdownFuncs = append(p.shutdownFuncs, mp.Shutdown)

	otel.SetMeterProvider(mp)
	return nil
}
