package apiclient

import (
	"context"
	"net/http"
	"time"

	"github.com/hotelhub/hotel-booking/internal/domain/booking"
	"github.com/hotelhub/hotel-booking/internal/domain/envelope"
)

const (
	msgBookingNotFound    = "Booking not found"
	msgStatusUpdateFailed = "Failed to update booking status"
	msgCancellationFailed = "Failed to cancel booking"
)

// BookingAPI wraps the booking service.
type BookingAPI struct {
	client *Client
}

func NewBookingAPI(client *Client) *BookingAPI {
	return &BookingAPI{client: client}
}

// statusChangeBody is the flat answer of the status and cancel endpoints.
type statusChangeBody struct {
	booking.StatusChange
	Error string `json:"error"`
}

func (a *BookingAPI) list(ctx context.Context, cl call) ([]booking.Booking, error) {
	env, err := send[envelope.Envelope[[]booking.Booking]](ctx, a.client, cl)
	if err != nil {
		return nil, err
	}
	return env.DataOrDefault([]booking.Booking{}), nil
}

func (a *BookingAPI) FetchBookings(ctx context.Context) ([]booking.Booking, error) {
	return a.list(ctx, call{op: "fetch_bookings", method: http.MethodGet, route: "/bookings"})
}

func (a *BookingAPI) FetchBookingByID(ctx context.Context, id int64) (booking.Booking, error) {
	const op = "fetch_booking_by_id"
	env, err := send[envelope.Envelope[booking.Booking]](ctx, a.client, call{
		op:         op,
		method:     http.MethodGet,
		route:      "/bookings/{id}",
		pathParams: map[string]string{"id": idParam(id)},
	})
	if err != nil {
		return booking.Booking{}, err
	}
	return unwrapData(a.client, op, &env, msgBookingNotFound)
}

func (a *BookingAPI) BookingsForUser(ctx context.Context, userID int64) ([]booking.Booking, error) {
	return a.list(ctx, call{
		op:         "bookings_for_user",
		method:     http.MethodGet,
		route:      "/bookings/user/{id}",
		pathParams: map[string]string{"id": idParam(userID)},
	})
}

func (a *BookingAPI) BookingsForHotel(ctx context.Context, hotelID int64) ([]booking.Booking, error) {
	return a.list(ctx, call{
		op:         "bookings_for_hotel",
		method:     http.MethodGet,
		route:      "/bookings/hotel/{id}",
		pathParams: map[string]string{"id": idParam(hotelID)},
	})
}

// SearchBookingsByDate lists bookings overlapping the [start, end] stay.
func (a *BookingAPI) SearchBookingsByDate(ctx context.Context, start, end time.Time) ([]booking.Booking, error) {
	if err := validateInput(dateRange{Start: start, End: end}); err != nil {
		return nil, err
	}
	return a.list(ctx, call{
		op:     "search_bookings_by_date",
		method: http.MethodGet,
		route:  "/bookings/search/date",
		query: map[string]string{
			"startDate": dateParam(start),
			"endDate":   dateParam(end),
		},
	})
}

// UpdateBookingStatus moves a booking to status. Unknown statuses are
// rejected before any request is sent.
func (a *BookingAPI) UpdateBookingStatus(ctx context.Context, id int64, status booking.Status) (booking.StatusChange, error) {
	if err := validateInput(statusUpdate{Status: status}); err != nil {
		return booking.StatusChange{}, err
	}
	return a.statusChange(ctx, "update_booking_status", msgStatusUpdateFailed, call{
		method:     http.MethodPost,
		route:      "/bookings/{id}/status",
		pathParams: map[string]string{"id": idParam(id)},
		query:      map[string]string{"status": string(status)},
	})
}

func (a *BookingAPI) CancelBooking(ctx context.Context, id int64) (booking.StatusChange, error) {
	return a.statusChange(ctx, "cancel_booking", msgCancellationFailed, call{
		method:     http.MethodDelete,
		route:      "/bookings/{id}",
		pathParams: map[string]string{"id": idParam(id)},
	})
}

func (a *BookingAPI) statusChange(ctx context.Context, op, fallback string, cl call) (booking.StatusChange, error) {
	cl.op = op
	body, err := send[statusChangeBody](ctx, a.client, cl)
	if err != nil {
		return booking.StatusChange{}, err
	}
	env := envelope.MessageEnvelope{Message: body.Message, Error: body.Error}
	if _, err := unwrapMessage(a.client, op, &env, fallback); err != nil {
		return booking.StatusChange{}, err
	}
	return body.StatusChange, nil
}

// CheckRoomAvailability asks whether a room is free for the stay.
func (a *BookingAPI) CheckRoomAvailability(ctx context.Context, hotelID, roomID int64, checkIn, checkOut time.Time) (bool, error) {
	if err := validateInput(stayQuery{HotelID: hotelID, RoomID: roomID, CheckIn: checkIn, CheckOut: checkOut}); err != nil {
		return false, err
	}
	body, err := send[struct {
		Available bool `json:"available"`
	}](ctx, a.client, call{
		op:     "check_room_availability",
		method: http.MethodGet,
		route:  "/bookings/availability",
		query: map[string]string{
			"hotelId":  idParam(hotelID),
			"roomId":   idParam(roomID),
			"checkIn":  dateParam(checkIn),
			"checkOut": dateParam(checkOut),
		},
	})
	if err != nil {
		return false, err
	}
	return body.Available, nil
}
