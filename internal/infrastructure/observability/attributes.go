package observability

import (
	"sort"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/hotelhub/hotel-booking/internal/infrastructure/telemetry"
)

// Standard attribute keys
const (
	AttrService      = "hotel.service"
	AttrOperation    = "hotel.operation"
	AttrRequestID    = "request_id"
	AttrUserID       = "user_id"
	AttrHotelID      = "hotel.id"
	AttrBookingID    = "booking.id"
	AttrPaymentID    = "payment.id"
	AttrNotification = "notification.id"
	AttrErrorKind    = "hotel.error.kind"

	// AttrQueryPrefix prefixes one attribute per query parameter.
	AttrQueryPrefix = "hotel.query."
)

// entityKeys maps the route segment in front of {id} to its attribute key.
var entityKeys = map[string]string{
	"user":          AttrUserID,
	"users":         AttrUserID,
	"hotel":         AttrHotelID,
	"hotels":        AttrHotelID,
	"booking":       AttrBookingID,
	"bookings":      AttrBookingID,
	"payment":       AttrPaymentID,
	"payments":      AttrPaymentID,
	"notification":  AttrNotification,
	"notifications": AttrNotification,
}

// WithCallAttrs returns the attributes every backend call carries.
func WithCallAttrs(service, operation string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String(AttrService, service),
		attribute.String(AttrOperation, operation),
	}
}

// WithEntityAttrs names the entity a route addresses, e.g. /bookings/user/{id}
// yields user_id. User ids pass through the sanitizer.
func WithEntityAttrs(route string, pathParams map[string]string, sanitizer *telemetry.Sanitizer) []attribute.KeyValue {
	id, ok := pathParams["id"]
	if !ok || id == "" {
		return nil
	}
	before, _, found := strings.Cut(route, "/{id}")
	if !found {
		return nil
	}
	segment := before[strings.LastIndex(before, "/")+1:]
	key, ok := entityKeys[segment]
	if !ok {
		return nil
	}
	if key == AttrUserID {
		if sanitizer == nil {
			return nil
		}
		id = sanitizer.SanitizeUserID(id)
	}
	return []attribute.KeyValue{attribute.String(key, id)}
}

// WithQueryAttrs records the query parameters of a call, values scrubbed by
// the sanitizer. Without a sanitizer nothing is recorded.
func WithQueryAttrs(query map[string]string, sanitizer *telemetry.Sanitizer) []attribute.KeyValue {
	if len(query) == 0 || sanitizer == nil {
		return nil
	}
	clean := sanitizer.SanitizeFields(query)
	keys := make([]string, 0, len(clean))
	for k := range clean {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]attribute.KeyValue, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, attribute.String(AttrQueryPrefix+k, clean[k]))
	}
	return attrs
}

// AddRequestAttrsToSpan records the request id sent with the call.
func AddRequestAttrsToSpan(span trace.Span, requestID string) {
	if span == nil || requestID == "" {
		return
	}
	span.SetAttributes(attribute.String(AttrRequestID, requestID))
}
