package booking

import (
	"github.com/shopspring/decimal"

	"github.com/hotelhub/hotel-booking/internal/domain/hotel"
)

// Status is the lifecycle state of a booking.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Booking is the detailed booking record returned by the booking service.
type Booking struct {
	ID                int64           `json:"id"`
	BookingID         int64           `json:"bookingId"`
	BookingDate       string          `json:"bookingDate"`
	CheckInDate       string          `json:"checkInDate"`
	CheckOutDate      string          `json:"checkOutDate"`
	Status            Status          `json:"status"`
	TotalAmount       decimal.Decimal `json:"totalAmount"`
	HotelID           int64           `json:"hotelId"`
	RoomID            int64           `json:"roomId"`
	UserID            int64           `json:"userId"`
	UserFirstName     string          `json:"userFirstName"`
	UserLastName      string          `json:"userLastName"`
	HotelName         string          `json:"hotelName"`
	RoomType          string          `json:"roomType"`
	HotelCheckInTime  string          `json:"hotelCheckInTime"`
	HotelCheckOutTime string          `json:"hotelCheckOutTime"`
}

// StatusChange is the answer to a status update or cancellation.
type StatusChange struct {
	Message   string `json:"message"`
	BookingID int64  `json:"bookingId"`
	Status    Status `json:"status"`
}

// BookedRooms projects bookings onto the rooms they occupy. Cancelled
// bookings do not hold a room.
func BookedRooms(bookings []Booking) []hotel.BookedRoom {
	out := make([]hotel.BookedRoom, 0, len(bookings))
	for _, b := range bookings {
		if b.Status == StatusCancelled {
			continue
		}
		out = append(out, hotel.BookedRoom{HotelID: b.HotelID, RoomID: b.RoomID})
	}
	return out
}

// GroupByStatus splits bookings by status, preserving order within a group.
func GroupByStatus(bookings []Booking) map[Status][]Booking {
	out := make(map[Status][]Booking, 3)
	for _, b := range bookings {
		out[b.Status] = append(out[b.Status], b)
	}
	return out
}
