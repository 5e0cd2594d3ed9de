package views

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelhub/hotel-booking/internal/domain/booking"
	"github.com/hotelhub/hotel-booking/internal/domain/hotel"
	"github.com/hotelhub/hotel-booking/internal/domain/payment"
	"github.com/hotelhub/hotel-booking/internal/domain/user"
)

func paymentsFixture() []payment.Payment {
	day := func(d int) time.Time { return time.Date(2024, 4, d, 10, 0, 0, 0, time.UTC) }
	return []payment.Payment{
		{ID: 1, BookingID: 100, Amount: decimal.NewFromInt(50), Status: "PENDING", TransactionDate: day(1)},
		{ID: 2, BookingID: 200, Amount: decimal.NewFromInt(80), Status: "COMPLETED", TransactionDate: day(3)},
		{ID: 3, BookingID: 100, Amount: decimal.NewFromInt(70), Status: "COMPLETED", TransactionDate: day(5)},
	}
}

func TestPaymentsLoad(t *testing.T) {
	bookings := &fakeBookings{bookings: []booking.Booking{
		{ID: 100, UserID: 1, HotelID: 10},
		{ID: 200, UserID: 2, HotelID: 20},
	}}
	users := &fakeUsers{users: map[int64]user.User{1: {ID: 1, FirstName: "Ada", LastName: "Lovelace"}}}
	hotels := &fakeHotels{hotels: []hotel.Hotel{{ID: 10, Name: "Grand"}}}

	p := NewPayments(&fakePayments{payments: paymentsFixture()}, bookings, users, hotels, zerolog.Nop())
	require.NoError(t, p.Load(context.Background()))
	assert.Empty(t, p.Error())

	rows := p.Rows()
	require.Len(t, rows, 2)

	assert.Equal(t, int64(100), rows[0].BookingID)
	assert.True(t, decimal.NewFromInt(120).Equal(rows[0].TotalAmount))
	assert.Equal(t, "COMPLETED", rows[0].Status)
	assert.Equal(t, "Ada Lovelace", rows[0].GuestName)
	assert.Equal(t, "Grand", rows[0].HotelName)

	assert.Equal(t, int64(200), rows[1].BookingID)
	assert.Equal(t, unknownName, rows[1].GuestName)
	assert.Equal(t, unknownName, rows[1].HotelName)
}

func TestPaymentsLoadBookingFailure(t *testing.T) {
	bookings := &fakeBookings{bookings: []booking.Booking{{ID: 100}}}
	p := NewPayments(&fakePayments{payments: paymentsFixture()}, bookings, &fakeUsers{}, &fakeHotels{}, zerolog.Nop())

	require.Error(t, p.Load(context.Background()))
	assert.Equal(t, MsgLoadPaymentsFailed, p.Error())
	assert.Empty(t, p.Rows())
}

func TestPaymentsLoadFetchFailure(t *testing.T) {
	p := NewPayments(&fakePayments{err: errBackend}, &fakeBookings{}, &fakeUsers{}, &fakeHotels{}, zerolog.Nop())

	require.ErrorIs(t, p.Load(context.Background()), errBackend)
	assert.Equal(t, MsgLoadPaymentsFailed, p.Error())
}

func TestPaymentsLoadEmpty(t *testing.T) {
	p := NewPayments(&fakePayments{}, &fakeBookings{}, &fakeUsers{}, &fakeHotels{}, zerolog.Nop())

	require.NoError(t, p.Load(context.Background()))
	assert.Empty(t, p.Rows())
}
