package filters

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelhub/hotel-booking/internal/domain/hotel"
)

func hotelWith(id int64, rating float64, prices ...string) hotel.Hotel {
	h := hotel.Hotel{ID: id, AverageRating: rating}
	for i, p := range prices {
		h.Rooms = append(h.Rooms, hotel.Room{
			ID:            hotel.RoomID{HotelID: id, RoomID: int64(i + 1)},
			PricePerNight: decimal.RequireFromString(p),
		})
	}
	return h
}

func TestParseCriteriaEmpty(t *testing.T) {
	c, err := ParseCriteria(Defaults())
	require.NoError(t, err)
	assert.True(t, c.Empty())
}

func TestParseCriteriaValues(t *testing.T) {
	c, err := ParseCriteria(Set{MinPrice: " 150 ", MaxPrice: "300.50", MinRating: "3.5"})
	require.NoError(t, err)

	require.NotNil(t, c.MinPrice)
	assert.Equal(t, "150", c.MinPrice.String())
	require.NotNil(t, c.MaxPrice)
	assert.Equal(t, "300.5", c.MaxPrice.String())
	require.NotNil(t, c.MinRating)
	assert.Nil(t, c.MaxRating)
}

func TestParseCriteriaErrors(t *testing.T) {
	tests := []struct {
		name  string
		set   Set
		field string
	}{
		{"not a number", Set{MinPrice: "cheap"}, MinPrice},
		{"negative", Set{MaxRating: "-1"}, MaxRating},
		{"inverted price", Set{MinPrice: "300", MaxPrice: "100"}, MaxPrice},
		{"inverted rating", Set{MinRating: "5", MaxRating: "4"}, MaxRating},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCriteria(tt.set)
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Contains(t, verr.Details, tt.field)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestCriteriaMatch(t *testing.T) {
	c, err := ParseCriteria(Set{MinPrice: "100", MaxPrice: "200", MinRating: "4"})
	require.NoError(t, err)

	assert.True(t, c.Match(hotelWith(1, 4.2, "150", "400")))
	assert.False(t, c.Match(hotelWith(2, 4.2, "90")), "cheapest room below min")
	assert.False(t, c.Match(hotelWith(3, 4.2, "250")), "cheapest room above max")
	assert.False(t, c.Match(hotelWith(4, 3.9, "150")), "rating below min")
	assert.False(t, c.Match(hotelWith(5, 5)), "no rooms with a price bound")
}

func TestCriteriaRatingOnlyIgnoresRooms(t *testing.T) {
	c, err := ParseCriteria(Set{MaxRating: "3"})
	require.NoError(t, err)

	assert.True(t, c.Match(hotelWith(1, 2.5)))
	assert.False(t, c.Match(hotelWith(2, 3.1)))
}

func TestCriteriaApplyKeepsOrder(t *testing.T) {
	hotels := []hotel.Hotel{
		hotelWith(1, 4, "120"),
		hotelWith(2, 4, "80"),
		hotelWith(3, 4, "199.99"),
	}
	c, err := ParseCriteria(Set{MinPrice: "100"})
	require.NoError(t, err)

	got := c.Apply(hotels)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)

	assert.Equal(t, hotels, Criteria{}.Apply(hotels))
}
