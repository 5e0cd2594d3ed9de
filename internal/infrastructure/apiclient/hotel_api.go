package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/hotelhub/hotel-booking/internal/domain/envelope"
	"github.com/hotelhub/hotel-booking/internal/domain/hotel"
	"github.com/hotelhub/hotel-booking/internal/infrastructure/cache"
	"github.com/hotelhub/hotel-booking/internal/infrastructure/metrics"
)

const (
	msgHotelNotFound = "Hotel not found"
	msgHotelDeleted  = "Hotel deleted successfully"

	destinationsKey = "destinations"
)

// HotelAPI wraps the hotel service. Destinations and single hotels are
// cached for the configured TTL.
type HotelAPI struct {
	client       *Client
	destinations cache.Cache[[]hotel.Destination]
	hotels       cache.Cache[hotel.Hotel]
}

func NewHotelAPI(client *Client, cacheCfg cache.Config) (*HotelAPI, error) {
	destinations, err := cache.New[[]hotel.Destination](cacheCfg)
	if err != nil {
		return nil, err
	}
	hotels, err := cache.New[hotel.Hotel](cacheCfg)
	if err != nil {
		return nil, err
	}
	return &HotelAPI{client: client, destinations: destinations, hotels: hotels}, nil
}

func hotelKey(id int64) string {
	return "hotel:" + strconv.FormatInt(id, 10)
}

func (a *HotelAPI) list(ctx context.Context, cl call) ([]hotel.Hotel, error) {
	env, err := send[envelope.Envelope[[]hotel.Hotel]](ctx, a.client, cl)
	if err != nil {
		return nil, err
	}
	return env.DataOrDefault([]hotel.Hotel{}), nil
}

// FetchHotels lists every hotel.
func (a *HotelAPI) FetchHotels(ctx context.Context) ([]hotel.Hotel, error) {
	return a.list(ctx, call{op: "fetch_hotels", method: http.MethodGet, route: "/hotels"})
}

// FetchHotelByID returns one hotel, failing with the server's message or
// "Hotel not found" when the envelope carries no data.
func (a *HotelAPI) FetchHotelByID(ctx context.Context, id int64) (hotel.Hotel, error) {
	key := hotelKey(id)
	if h, ok := a.hotels.Get(key); ok {
		metrics.RecordCacheLookup("hotel", true)
		return h, nil
	}
	metrics.RecordCacheLookup("hotel", false)

	const op = "fetch_hotel_by_id"
	env, err := send[envelope.Envelope[hotel.Hotel]](ctx, a.client, call{
		op:         op,
		method:     http.MethodGet,
		route:      "/hotels/{id}",
		pathParams: map[string]string{"id": idParam(id)},
	})
	if err != nil {
		return hotel.Hotel{}, err
	}
	h, err := unwrapData(a.client, op, &env, msgHotelNotFound)
	if err != nil {
		return hotel.Hotel{}, err
	}
	a.hotels.Set(key, h)
	return h, nil
}

func (a *HotelAPI) SearchHotelsByName(ctx context.Context, name string) ([]hotel.Hotel, error) {
	return a.list(ctx, call{
		op:     "search_hotels_by_name",
		method: http.MethodGet,
		route:  "/hotels/search",
		query:  map[string]string{"name": name},
	})
}

// SearchHotelsByLocation matches on city and country; empty values match all.
func (a *HotelAPI) SearchHotelsByLocation(ctx context.Context, city, country string) ([]hotel.Hotel, error) {
	return a.list(ctx, call{
		op:     "search_hotels_by_location",
		method: http.MethodGet,
		route:  "/hotels/search/location",
		query:  map[string]string{"city": city, "country": country},
	})
}

// HotelsNearby accepts both an enveloped and a bare array answer.
func (a *HotelAPI) HotelsNearby(ctx context.Context, latitude, longitude float64) ([]hotel.Hotel, error) {
	if err := validateInput(coordinates{Latitude: latitude, Longitude: longitude}); err != nil {
		return nil, err
	}
	raw, err := send[json.RawMessage](ctx, a.client, call{
		op:     "hotels_nearby",
		method: http.MethodGet,
		route:  "/hotels/nearby",
		query: map[string]string{
			"latitude":  strconv.FormatFloat(latitude, 'f', -1, 64),
			"longitude": strconv.FormatFloat(longitude, 'f', -1, 64),
		},
	})
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var hotels []hotel.Hotel
		if err := json.Unmarshal(trimmed, &hotels); err != nil {
			return nil, requestError(err)
		}
		return hotels, nil
	}

	var env envelope.Envelope[[]hotel.Hotel]
	if len(trimmed) > 0 {
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, requestError(err)
		}
	}
	return env.DataOrDefault([]hotel.Hotel{}), nil
}

// FetchHotelsByIDs resolves several hotels in one request.
func (a *HotelAPI) FetchHotelsByIDs(ctx context.Context, ids []int64) ([]hotel.Hotel, error) {
	if len(ids) == 0 {
		return []hotel.Hotel{}, nil
	}
	return a.list(ctx, call{
		op:     "fetch_hotels_by_ids",
		method: http.MethodPost,
		route:  "/hotels/bulk",
		body:   map[string][]int64{"hotelIds": ids},
	})
}

// FetchHotelDestinations lists cities with their hotel counts.
func (a *HotelAPI) FetchHotelDestinations(ctx context.Context) ([]hotel.Destination, error) {
	if d, ok := a.destinations.Get(destinationsKey); ok {
		metrics.RecordCacheLookup("destinations", true)
		return d, nil
	}
	metrics.RecordCacheLookup("destinations", false)

	env, err := send[envelope.Envelope[[]hotel.Destination]](ctx, a.client, call{
		op:     "fetch_hotel_destinations",
		method: http.MethodGet,
		route:  "/hotels/destinations",
	})
	if err != nil {
		return nil, err
	}
	destinations := env.DataOrDefault([]hotel.Destination{})
	a.destinations.Set(destinationsKey, destinations)
	return destinations, nil
}

// DeleteHotel removes a hotel and returns the confirmation message.
func (a *HotelAPI) DeleteHotel(ctx context.Context, id int64) (string, error) {
	env, err := send[envelope.MessageEnvelope](ctx, a.client, call{
		op:         "delete_hotel",
		method:     http.MethodDelete,
		route:      "/hotels/{id}",
		pathParams: map[string]string{"id": idParam(id)},
	})
	if err != nil {
		return "", err
	}
	a.hotels.Remove(hotelKey(id))
	a.destinations.Remove(destinationsKey)
	if env.Message == "" {
		return msgHotelDeleted, nil
	}
	return env.Message, nil
}
