package views

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hotelhub/hotel-booking/internal/domain/booking"
	"github.com/hotelhub/hotel-booking/internal/domain/hotel"
	"github.com/hotelhub/hotel-booking/internal/domain/notification"
	"github.com/hotelhub/hotel-booking/internal/domain/payment"
	"github.com/hotelhub/hotel-booking/internal/domain/user"
)

var errBackend = errors.New("backend unavailable")

func room(hotelID, roomID int64, price string) hotel.Room {
	return hotel.Room{
		ID:            hotel.RoomID{HotelID: hotelID, RoomID: roomID},
		PricePerNight: decimal.RequireFromString(price),
	}
}

type fakeHotels struct {
	hotels       []hotel.Hotel
	destinations []hotel.Destination
	err          error

	city, country string
}

func (f *fakeHotels) SearchHotelsByLocation(_ context.Context, city, country string) ([]hotel.Hotel, error) {
	f.city, f.country = city, country
	if f.err != nil {
		return nil, f.err
	}
	return f.hotels, nil
}

func (f *fakeHotels) FetchHotelDestinations(context.Context) ([]hotel.Destination, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.destinations, nil
}

func (f *fakeHotels) FetchHotelByID(_ context.Context, id int64) (hotel.Hotel, error) {
	if f.err != nil {
		return hotel.Hotel{}, f.err
	}
	for _, h := range f.hotels {
		if h.ID == id {
			return h, nil
		}
	}
	return hotel.Hotel{}, errors.New("Hotel not found")
}

type fakeBookings struct {
	bookings []booking.Booking
	err      error
	calls    int
}

func (f *fakeBookings) SearchBookingsByDate(context.Context, time.Time, time.Time) ([]booking.Booking, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
}

func (f *fakeBookings) FetchBookingByID(_ context.Context, id int64) (booking.Booking, error) {
	if f.err != nil {
		return booking.Booking{}, f.err
	}
	for _, b := range f.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return booking.Booking{}, errors.New("Booking not found")
}

type fakeInbox struct {
	items []notification.Notification
	err   error

	markedOne int64
	markedAll int64
}

func (f *fakeInbox) NotificationsForUser(context.Context, int64) ([]notification.Notification, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func (f *fakeInbox) MarkNotificationRead(_ context.Context, id int64) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.markedOne = id
	return "Notification marked as read", nil
}

func (f *fakeInbox) MarkAllNotificationsRead(_ context.Context, userID int64) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.markedAll = userID
	return "All notifications marked as read", nil
}

type fakePayments struct {
	payments []payment.Payment
	err      error
}

func (f *fakePayments) FetchPayments(context.Context) ([]payment.Payment, error) {
	return f.payments, f.err
}

type fakeUsers struct {
	users map[int64]user.User
}

func (f *fakeUsers) FetchUser(_ context.Context, id int64) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, errors.New("User not found.")
	}
	return u, nil
}
