package apiclient

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/hotelhub/hotel-booking/internal/domain/envelope"
	"github.com/hotelhub/hotel-booking/internal/domain/payment"
)

// PaymentAPI wraps the payment service.
type PaymentAPI struct {
	client *Client
}

func NewPaymentAPI(client *Client) *PaymentAPI {
	return &PaymentAPI{client: client}
}

// wirePayment is the payment service's field naming.
type wirePayment struct {
	PaymentID       int64           `json:"paymentId"`
	BookingID       int64           `json:"bookingId"`
	AmountPaid      decimal.Decimal `json:"amountPaid"`
	PaymentStatus   string          `json:"paymentStatus"`
	PaymentMethod   string          `json:"paymentMethod"`
	PaymentDateTime string          `json:"paymentDateTime"`
}

func (w wirePayment) toDomain() payment.Payment {
	return payment.Payment{
		ID:              w.PaymentID,
		BookingID:       w.BookingID,
		Amount:          w.AmountPaid,
		Status:          w.PaymentStatus,
		Method:          payment.Method(w.PaymentMethod),
		TransactionDate: parseTimestamp(w.PaymentDateTime),
	}
}

func (a *PaymentAPI) list(ctx context.Context, cl call) ([]payment.Payment, error) {
	env, err := send[envelope.Envelope[[]wirePayment]](ctx, a.client, cl)
	if err != nil {
		return nil, err
	}
	items := env.DataOrDefault(nil)
	out := make([]payment.Payment, 0, len(items))
	for _, item := range items {
		out = append(out, item.toDomain())
	}
	return out, nil
}

func (a *PaymentAPI) FetchPayments(ctx context.Context) ([]payment.Payment, error) {
	return a.list(ctx, call{op: "fetch_payments", method: http.MethodGet, route: "/payments"})
}

func (a *PaymentAPI) PaymentsForUser(ctx context.Context, userID int64) ([]payment.Payment, error) {
	return a.list(ctx, call{
		op:         "payments_for_user",
		method:     http.MethodGet,
		route:      "/payments/user/{id}",
		pathParams: map[string]string{"id": idParam(userID)},
	})
}

func (a *PaymentAPI) PaymentsForBooking(ctx context.Context, bookingID int64) ([]payment.Payment, error) {
	return a.list(ctx, call{
		op:         "payments_for_booking",
		method:     http.MethodGet,
		route:      "/payments/booking/{id}",
		pathParams: map[string]string{"id": idParam(bookingID)},
	})
}
