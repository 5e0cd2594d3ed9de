package hotel

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RoomID is the composite key of a room inside a hotel.
type RoomID struct {
	HotelID int64 `json:"hotelId"`
	RoomID  int64 `json:"roomId"`
}

// Room is a bookable room as returned by the hotel service.
type Room struct {
	ID            RoomID          `json:"id"`
	RoomType      string          `json:"room_type"`
	PricePerNight decimal.Decimal `json:"pricePerNight"`
	MaxOccupancy  int             `json:"maxOccupancy"`
	Status        string          `json:"status"`
}

// Hotel is the hotel record used by search, details and bookmark views.
type Hotel struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	City          string  `json:"city"`
	Country       string  `json:"country"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Description   string  `json:"description"`
	Contact       string  `json:"contact"`
	AverageRating float64 `json:"averageRating"`
	Image         string  `json:"image,omitempty"`
	Rooms         []Room  `json:"rooms"`
	CheckIn       string  `json:"checkIn"`
	CheckOut      string  `json:"checkOut"`
}

// Destination is a city with its hotel count, shown as a popular destination.
type Destination struct {
	City     string `json:"city"`
	Country  string `json:"country"`
	Count    int    `json:"count"`
	ImageURL string `json:"imageUrl"`
}

// Key identifies the destination in search inputs ("city|country").
func (d Destination) Key() string {
	return d.City + "|" + d.Country
}

// CheapestRoom returns the lowest nightly price, or false when the hotel has
// no rooms.
func (h Hotel) CheapestRoom() (decimal.Decimal, bool) {
	if len(h.Rooms) == 0 {
		return decimal.Zero, false
	}
	lowest := h.Rooms[0].PricePerNight
	for _, r := range h.Rooms[1:] {
		if r.PricePerNight.LessThan(lowest) {
			lowest = r.PricePerNight
		}
	}
	return lowest, true
}

// PricingRange renders the "$min - $max" label for a room list.
func PricingRange(rooms []Room) string {
	if len(rooms) == 0 {
		return "$0 - $0"
	}
	lo, hi := rooms[0].PricePerNight, rooms[0].PricePerNight
	for _, r := range rooms[1:] {
		if r.PricePerNight.LessThan(lo) {
			lo = r.PricePerNight
		}
		if r.PricePerNight.GreaterThan(hi) {
			hi = r.PricePerNight
		}
	}
	return fmt.Sprintf("$%s - $%s", lo.String(), hi.String())
}
