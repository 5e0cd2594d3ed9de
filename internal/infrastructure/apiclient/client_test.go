package apiclient

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/hotelhub/hotel-booking/internal/infrastructure/telemetry"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	return newTestClientWithRetries(t, handler, 0)
}

func newTestClientWithRetries(t *testing.T, handler http.HandlerFunc, retries int) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Options{
		Service:    "test",
		BaseURL:    srv.URL,
		RetryCount: retries,
		Logger:     zerolog.Nop(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

type widget struct {
	Name string `json:"name"`
}

func getWidget(ctx context.Context, c *Client) (widget, error) {
	return send[widget](ctx, c, call{op: "widget", method: http.MethodGet, route: "/widgets"})
}

func TestSendSetsHeaders(t *testing.T) {
	var requestID, contentType string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get(RequestIDHeader)
		contentType = r.Header.Get("Content-Type")
		writeJSON(w, http.StatusOK, `{"name":"ok"}`)
	})

	got, err := getWidget(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, "ok", got.Name)

	_, parseErr := uuid.Parse(requestID)
	assert.NoError(t, parseErr, "request id must be a uuid, got %q", requestID)
	assert.Equal(t, "application/json", contentType)
}

func TestSendEmptyBodyYieldsZeroValue(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	got, err := getWidget(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, widget{}, got)
}

func TestSendResponseErrorMessages(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"message wins", http.StatusBadRequest, `{"message":"Invalid dates","error":"Bad Request"}`, "Invalid dates"},
		{"error when no message", http.StatusForbidden, `{"error":"Forbidden"}`, "Forbidden"},
		{"fallback for empty body", http.StatusInternalServerError, ``, MsgRequestFailed},
		{"fallback for non json body", http.StatusBadGateway, `<html>bad gateway</html>`, MsgRequestFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, tt.body)
			})

			_, err := getWidget(context.Background(), c)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, KindResponse, apiErr.Kind)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.message, apiErr.Error())
			assert.True(t, IsStatus(err, tt.status))
		})
	}
}

func TestSendNoResponse(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := New(Options{Service: "test", BaseURL: srv.URL, Logger: zerolog.Nop()})

	_, err := getWidget(context.Background(), c)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindNoResponse, apiErr.Kind)
	assert.Equal(t, MsgNoResponse, apiErr.Error())
	assert.NotNil(t, errors.Unwrap(apiErr))
}

func TestSendCancelledContextIsRequestError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{}`)
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := getWidget(ctx, c)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindRequest, apiErr.Kind)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSendUndecodableBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"name": 42}`)
	})

	_, err := getWidget(context.Background(), c)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindRequest, apiErr.Kind)
	assert.Contains(t, apiErr.Error(), "decode widget response")
}

func TestSendRetriesIdempotentRequests(t *testing.T) {
	var calls atomic.Int32
	c := newTestClientWithRetries(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			writeJSON(w, http.StatusServiceUnavailable, `{}`)
			return
		}
		writeJSON(w, http.StatusOK, `{"name":"second"}`)
	}, 1)

	got, err := getWidget(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, "second", got.Name)
	assert.Equal(t, int32(2), calls.Load())
}

func TestSendDoesNotRetryWrites(t *testing.T) {
	var calls atomic.Int32
	c := newTestClientWithRetries(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusServiceUnavailable, `{}`)
	}, 2)

	_, err := send[widget](context.Background(), c, call{op: "write", method: http.MethodPost, route: "/widgets"})
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRequestErrorFallback(t *testing.T) {
	assert.Equal(t, MsgUnknown, requestError(nil).Message)
	assert.Equal(t, MsgUnknown, requestError(errors.New(" ")).Message)
	assert.Equal(t, "boom", requestError(errors.New("boom")).Message)
}

func TestSendScrubsQueryValues(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "jane@example.com", r.URL.Query().Get("email"))
		writeJSON(w, http.StatusOK, `{}`)
	}))
	t.Cleanup(srv.Close)

	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	var logs bytes.Buffer
	c := New(Options{
		Service:   "test",
		BaseURL:   srv.URL,
		Tracer:    tp.Tracer("test"),
		Sanitizer: telemetry.NewSanitizer(telemetry.PIILevelNone, "salt"),
		Logger:    zerolog.New(&logs).Level(zerolog.DebugLevel),
	})

	_, err := send[widget](context.Background(), c, call{
		op:     "lookup",
		method: http.MethodGet,
		route:  "/widgets",
		query:  map[string]string{"email": "jane@example.com"},
	})
	require.NoError(t, err)

	assert.Contains(t, logs.String(), `"query":{"email":"[REDACTED]"}`)
	assert.NotContains(t, logs.String(), "jane@example.com")

	spans := rec.Ended()
	require.Len(t, spans, 1)
	found := false
	for _, kv := range spans[0].Attributes() {
		if string(kv.Key) == "hotel.query.email" {
			found = true
			assert.Equal(t, "[REDACTED]", kv.Value.AsString())
		}
	}
	assert.True(t, found, "query attribute missing from span")
}
