package apiclient

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// instruments are the OpenTelemetry counterparts of the Prometheus
// collectors, exported through the OTLP meter when metrics are enabled.
type instruments struct {
	requestDuration metric.Float64Histogram
	requestsTotal   metric.Int64Counter
}

func newInstruments(meter metric.Meter, service string) *instruments {
	requestDuration, _ := meter.Float64Histogram(
		fmt.Sprintf("hotel_client_%s_request_duration_seconds", service),
		metric.WithDescription("Backend request duration in seconds"),
		metric.WithUnit("s"),
	)

	requestsTotal, _ := meter.Int64Counter(
		fmt.Sprintf("hotel_client_%s_requests_total", service),
		metric.WithDescription("Total backend requests"),
	)

	return &instruments{
		requestDuration: requestDuration,
		requestsTotal:   requestsTotal,
	}
}

func (i *instruments) record(ctx context.Context, method, route string, status int, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("route", route),
		attribute.Int("status", status),
	)
	if i.requestDuration != nil {
		i.requestDuration.Record(ctx, elapsed.Seconds(), attrs)
	}
	if i.requestsTotal != nil {
		i.requestsTotal.Add(ctx, 1, attrs)
	}
}
