package apiclient

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelhub/hotel-booking/internal/domain/payment"
)

func TestFetchPaymentsMapsWireFields(t *testing.T) {
	api := NewPaymentAPI(newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payments", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"data": [{
			"paymentId": 11,
			"bookingId": 3,
			"amountPaid": 199.99,
			"paymentStatus": "COMPLETED",
			"paymentMethod": "STRIPE",
			"paymentDateTime": "2025-04-02T09:30:00"
		}]}`)
	}))

	got, err := api.FetchPayments(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)

	p := got[0]
	assert.Equal(t, int64(11), p.ID)
	assert.Equal(t, int64(3), p.BookingID)
	assert.Equal(t, "199.99", p.Amount.String())
	assert.Equal(t, "COMPLETED", p.Status)
	assert.Equal(t, payment.MethodStripe, p.Method)
	assert.Equal(t, time.Date(2025, time.April, 2, 9, 30, 0, 0, time.UTC), p.TransactionDate)
}

func TestPaymentsForBookingWithoutData(t *testing.T) {
	api := NewPaymentAPI(newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payments/booking/3", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"message": "No payments"}`)
	}))

	got, err := api.PaymentsForBooking(context.Background(), 3)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestParseTimestamp(t *testing.T) {
	assert.True(t, parseTimestamp("").IsZero())
	assert.True(t, parseTimestamp("yesterday").IsZero())
	assert.Equal(t, 2025, parseTimestamp("2025-04-02").Year())
	assert.Equal(t, 123456000, parseTimestamp("2025-04-02T09:30:00.123456").Nanosecond())
}
