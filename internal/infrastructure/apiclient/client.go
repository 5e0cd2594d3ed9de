package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/hotelhub/hotel-booking/internal/domain/envelope"
	"github.com/hotelhub/hotel-booking/internal/infrastructure/metrics"
	"github.com/hotelhub/hotel-booking/internal/infrastructure/observability"
	"github.com/hotelhub/hotel-booking/internal/infrastructure/telemetry"
)

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// Options configures a Client. Zero-valued telemetry fields fall back to the
// global OpenTelemetry providers and a hashing sanitizer.
type Options struct {
	Service    string
	BaseURL    string
	Timeout    time.Duration
	RetryCount int
	Tracer     trace.Tracer
	Meter      metric.Meter
	Sanitizer  *telemetry.Sanitizer
	Logger     zerolog.Logger
}

// Client talks to one backend service.
type Client struct {
	service     string
	httpClient  *resty.Client
	tracer      trace.Tracer
	instruments *instruments
	sanitizer   *telemetry.Sanitizer
	log         zerolog.Logger
}

// New constructs a client for a single service.
func New(opts Options) *Client {
	tracer := opts.Tracer
	if tracer == nil {
		tracer = otel.Tracer("hotel-client")
	}
	meter := opts.Meter
	if meter == nil {
		meter = otel.Meter("hotel-client")
	}
	sanitizer := opts.Sanitizer
	if sanitizer == nil {
		sanitizer = telemetry.NewSanitizer(telemetry.PIILevelHashed, opts.Service)
	}

	httpClient := resty.New().
		SetBaseURL(opts.BaseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetRetryCount(opts.RetryCount).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(retryIdempotent).
		OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			if r.Header.Get(RequestIDHeader) == "" {
				r.SetHeader(RequestIDHeader, uuid.NewString())
			}
			return nil
		})
	if opts.Timeout > 0 {
		httpClient.SetTimeout(opts.Timeout)
	}

	return &Client{
		service:     opts.Service,
		httpClient:  httpClient,
		tracer:      tracer,
		instruments: newInstruments(meter, opts.Service),
		sanitizer:   sanitizer,
		log:         opts.Logger.With().Str("component", "apiclient").Str("backend", opts.Service).Logger(),
	}
}

// Service names the backend this client talks to.
func (c *Client) Service() string {
	return c.service
}

// retryIdempotent retries GETs on transport failures and 5xx answers.
func retryIdempotent(resp *resty.Response, err error) bool {
	if resp == nil || resp.Request == nil {
		return err != nil
	}
	if resp.Request.Method != http.MethodGet {
		return false
	}
	return err != nil || resp.StatusCode() >= http.StatusInternalServerError
}

// call describes one backend request. route is the path template; its
// {placeholders} are filled from pathParams.
type call struct {
	op         string
	method     string
	route      string
	pathParams map[string]string
	query      map[string]string
	body       any
}

// send executes cl and decodes a successful JSON body into T. An empty body
// yields the zero T.
func send[T any](ctx context.Context, c *Client, cl call) (T, error) {
	var out T
	start := time.Now()
	query := c.sanitizer.SanitizeFields(cl.query)

	ctx, span := c.tracer.Start(ctx, c.service+" "+cl.op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			semconv.HTTPMethod(cl.method),
			semconv.HTTPRoute(cl.route),
		),
		trace.WithAttributes(observability.WithCallAttrs(c.service, cl.op)...),
		trace.WithAttributes(observability.WithEntityAttrs(cl.route, cl.pathParams, c.sanitizer)...),
		trace.WithAttributes(observability.WithQueryAttrs(cl.query, c.sanitizer)...),
	)
	defer span.End()

	req := c.httpClient.R().SetContext(ctx)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	if len(cl.pathParams) > 0 {
		req.SetPathParams(cl.pathParams)
	}
	if len(cl.query) > 0 {
		req.SetQueryParams(cl.query)
	}
	if cl.body != nil {
		req.SetBody(cl.body)
	}

	resp, err := req.Execute(cl.method, cl.route)
	elapsed := time.Since(start)
	status := 0
	if resp != nil {
		status = resp.StatusCode()
		if resp.Request != nil {
			observability.AddRequestAttrsToSpan(span, resp.Request.Header.Get(RequestIDHeader))
		}
	}
	c.instruments.record(ctx, cl.method, cl.route, status, elapsed)
	span.SetAttributes(semconv.HTTPStatusCode(status))

	var apiErr *APIError
	switch {
	case err != nil:
		apiErr = transportError(err)
	case resp.IsError():
		apiErr = responseError(resp)
	case len(bytes.TrimSpace(resp.Body())) > 0:
		if err := json.Unmarshal(resp.Body(), &out); err != nil {
			apiErr = requestError(fmt.Errorf("decode %s response: %w", cl.op, err))
		}
	}

	if apiErr != nil {
		span.RecordError(apiErr)
		span.SetAttributes(attribute.String(observability.AttrErrorKind, string(apiErr.Kind)))
		span.SetStatus(codes.Error, apiErr.Message)
		metrics.RecordRequest(c.service, cl.op, outcomeOf(apiErr.Kind), elapsed)
		c.log.Warn().
			Str("operation", cl.op).
			Str("kind", string(apiErr.Kind)).
			Int("status", status).
			Interface("query", query).
			Str("message", c.sanitizer.SanitizeText(apiErr.Message)).
			Dur("elapsed", elapsed).
			Msg("backend call failed")
		var zero T
		return zero, apiErr
	}

	metrics.RecordRequest(c.service, cl.op, metrics.OutcomeSuccess, elapsed)
	c.log.Debug().
		Str("operation", cl.op).
		Int("status", status).
		Interface("query", query).
		Dur("elapsed", elapsed).
		Msg("backend call completed")
	return out, nil
}

func outcomeOf(kind ErrorKind) string {
	switch kind {
	case KindResponse:
		return metrics.OutcomeResponse
	case KindNoResponse:
		return metrics.OutcomeNoResponse
	default:
		return metrics.OutcomeRequest
	}
}

// unwrapData returns the envelope's data or the envelope error, counting the
// failure.
func unwrapData[T any](c *Client, op string, env *envelope.Envelope[T], fallbackMessage string) (T, error) {
	data, err := env.DataOrError(fallbackMessage)
	if err != nil {
		c.envelopeFailure(op, err)
	}
	return data, err
}

// unwrapMessage returns the envelope's message or the envelope error.
func unwrapMessage(c *Client, op string, env *envelope.MessageEnvelope, fallbackMessage string) (string, error) {
	msg, err := env.MessageOrError(fallbackMessage)
	if err != nil {
		c.envelopeFailure(op, err)
	}
	return msg, err
}

func (c *Client) envelopeFailure(op string, err error) {
	var envErr *envelope.Error
	if !errors.As(err, &envErr) {
		return
	}
	metrics.RecordEnvelopeFailure(c.service, op, string(envErr.Kind))
	c.log.Warn().
		Str("operation", op).
		Str("kind", string(envErr.Kind)).
		Str("message", c.sanitizer.SanitizeText(envErr.Message)).
		Msg("response envelope without payload")
}
