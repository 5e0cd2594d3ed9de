package views

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/hotelhub/hotel-booking/internal/domain/booking"
	"github.com/hotelhub/hotel-booking/internal/domain/filters"
	"github.com/hotelhub/hotel-booking/internal/domain/hotel"
	"github.com/hotelhub/hotel-booking/internal/domain/pagination"
)

// MsgLoadHotelsFailed is shown when the search could not be loaded.
const MsgLoadHotelsFailed = "Failed to load hotels. Please try again."

// HotelSource is the part of the hotel API the search page needs.
type HotelSource interface {
	SearchHotelsByLocation(ctx context.Context, city, country string) ([]hotel.Hotel, error)
	FetchHotelDestinations(ctx context.Context) ([]hotel.Destination, error)
}

// BookingSource lists bookings overlapping a stay.
type BookingSource interface {
	SearchBookingsByDate(ctx context.Context, start, end time.Time) ([]booking.Booking, error)
}

// Layout is how results are arranged.
type Layout string

const (
	LayoutGrid Layout = "grid"
	LayoutList Layout = "list"
)

// Query selects the hotels to load. Availability is applied only when both
// dates are set.
type Query struct {
	City     string
	Country  string
	CheckIn  time.Time
	CheckOut time.Time
}

func (q Query) hasDates() bool {
	return !q.CheckIn.IsZero() && !q.CheckOut.IsZero()
}

// ParseDestination splits a "city|country" search input.
func ParseDestination(input string) (city, country string, ok bool) {
	if strings.TrimSpace(input) == "" {
		return "", "", false
	}
	city, country, _ = strings.Cut(input, "|")
	return city, country, true
}

// SearchResults is the state behind the hotel search page: loaded hotels,
// filters, the current page and the layout. Not safe for concurrent use.
type SearchResults struct {
	hotels   HotelSource
	bookings BookingSource
	log      zerolog.Logger

	filters  *filters.Store
	pager    *pagination.Paginator
	pageSize int
	layout   Layout

	results      []hotel.Hotel
	destinations []hotel.Destination
	errMsg       string
}

func NewSearchResults(hotels HotelSource, bookings BookingSource, pageSize int, log zerolog.Logger) *SearchResults {
	return &SearchResults{
		hotels:   hotels,
		bookings: bookings,
		log:      log,
		filters:  filters.NewStore(nil),
		pager:    pagination.New(),
		pageSize: pageSize,
		layout:   LayoutGrid,
	}
}

// Load fetches the hotels for q and, with dates, the bookings that make
// rooms unavailable. Both requests run concurrently. On failure the previous
// results stay and Error reports a user-facing message.
func (s *SearchResults) Load(ctx context.Context, q Query) error {
	var found []hotel.Hotel
	var booked []booking.Booking

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		found, err = s.hotels.SearchHotelsByLocation(gctx, q.City, q.Country)
		return err
	})
	if q.hasDates() {
		g.Go(func() error {
			var err error
			booked, err = s.bookings.SearchBookingsByDate(gctx, q.CheckIn, q.CheckOut)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		s.log.Error().Err(err).Str("city", q.City).Str("country", q.Country).Msg("load hotels")
		s.errMsg = MsgLoadHotelsFailed
		return err
	}

	if q.hasDates() {
		found = hotel.FilterAvailable(found, booking.BookedRooms(booked))
	}
	s.results = found
	s.errMsg = ""
	s.pager.SetPage(1)
	return nil
}

// LoadDestinations refreshes the popular destinations. Failures are logged
// and leave the previous list in place.
func (s *SearchResults) LoadDestinations(ctx context.Context) {
	destinations, err := s.hotels.FetchHotelDestinations(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to load popular destinations")
		return
	}
	s.destinations = destinations
}

func (s *SearchResults) Destinations() []hotel.Destination {
	return s.destinations
}

// Results returns the loaded hotels before filtering.
func (s *SearchResults) Results() []hotel.Hotel {
	return s.results
}

// Error returns the user-facing load error, or "".
func (s *SearchResults) Error() string {
	return s.errMsg
}

func (s *SearchResults) Filters() filters.Set {
	return s.filters.Filters()
}

// SetFilter changes one filter and returns to the first page.
func (s *SearchResults) SetFilter(name, value string) {
	s.filters.HandleFieldChange(name, value)
	s.pager.SetPage(1)
}

// ApplyQuery loads filters from URL query parameters.
func (s *SearchResults) ApplyQuery(q url.Values) {
	s.filters.ApplyQuery(q)
	s.pager.SetPage(1)
}

func (s *SearchResults) ResetFilters() {
	s.filters.Reset()
	s.pager.SetPage(1)
}

func (s *SearchResults) Layout() Layout {
	return s.layout
}

func (s *SearchResults) ToggleLayout() {
	if s.layout == LayoutGrid {
		s.layout = LayoutList
		return
	}
	s.layout = LayoutGrid
}

func (s *SearchResults) Page() int {
	return s.pager.Page()
}

// SetPage moves to page n without bounds checks.
func (s *SearchResults) SetPage(n int) {
	s.pager.SetPage(n)
}

// Visible filters the loaded hotels and returns the current page.
func (s *SearchResults) Visible() (pagination.View[hotel.Hotel], error) {
	matched, err := s.matching()
	if err != nil {
		return pagination.Compute[hotel.Hotel](nil, s.pageSize, 1), err
	}
	return pagination.ComputeView(s.pager, matched, s.pageSize), nil
}

// GoTo moves to page n if it exists for the filtered results.
func (s *SearchResults) GoTo(n int) bool {
	matched, err := s.matching()
	if err != nil {
		return false
	}
	return s.pager.GoTo(n, pagination.TotalPages(len(matched), s.pageSize))
}

func (s *SearchResults) matching() ([]hotel.Hotel, error) {
	criteria, err := filters.ParseCriteria(s.filters.Filters())
	if err != nil {
		return nil, err
	}
	return criteria.Apply(s.results), nil
}
