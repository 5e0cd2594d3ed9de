package views

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/hotelhub/hotel-booking/internal/domain/booking"
	"github.com/hotelhub/hotel-booking/internal/domain/hotel"
	"github.com/hotelhub/hotel-booking/internal/domain/payment"
	"github.com/hotelhub/hotel-booking/internal/domain/user"
)

// MsgLoadPaymentsFailed is shown when the payment report could not be built.
const MsgLoadPaymentsFailed = "Failed to fetch payments."

const unknownName = "Unknown"

// maxLookups bounds concurrent detail lookups while building the report.
const maxLookups = 4

type PaymentSource interface {
	FetchPayments(ctx context.Context) ([]payment.Payment, error)
}

type BookingLookup interface {
	FetchBookingByID(ctx context.Context, id int64) (booking.Booking, error)
}

type UserLookup interface {
	FetchUser(ctx context.Context, id int64) (user.User, error)
}

type HotelLookup interface {
	FetchHotelByID(ctx context.Context, id int64) (hotel.Hotel, error)
}

// PaymentRow is one booking's payments with the details shown next to them.
type PaymentRow struct {
	payment.Group `yaml:",inline"`
	Booking       booking.Booking `json:"booking"`
	GuestName     string          `json:"guestName"`
	HotelName     string          `json:"hotelName"`
}

// Payments is the admin payment report: payments grouped per booking,
// newest first, with guest and hotel names resolved.
type Payments struct {
	payments PaymentSource
	bookings BookingLookup
	users    UserLookup
	hotels   HotelLookup
	log      zerolog.Logger

	rows   []PaymentRow
	errMsg string
}

func NewPayments(payments PaymentSource, bookings BookingLookup, users UserLookup, hotels HotelLookup, log zerolog.Logger) *Payments {
	return &Payments{
		payments: payments,
		bookings: bookings,
		users:    users,
		hotels:   hotels,
		log:      log,
	}
}

// Load builds the report. A failed booking lookup fails the whole report;
// guest and hotel names fall back to "Unknown".
func (p *Payments) Load(ctx context.Context) error {
	all, err := p.payments.FetchPayments(ctx)
	if err != nil {
		return p.fail(err)
	}
	groups := payment.GroupByBooking(all)
	payment.SortByLatest(groups)

	rows := make([]PaymentRow, len(groups))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxLookups)
	for i := range groups {
		i := i
		g.Go(func() error {
			row, err := p.resolve(gctx, groups[i])
			if err != nil {
				return err
			}
			rows[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return p.fail(err)
	}

	p.rows = rows
	p.errMsg = ""
	return nil
}

func (p *Payments) resolve(ctx context.Context, g payment.Group) (PaymentRow, error) {
	b, err := p.bookings.FetchBookingByID(ctx, g.BookingID)
	if err != nil {
		return PaymentRow{}, err
	}
	row := PaymentRow{Group: g, Booking: b, GuestName: unknownName, HotelName: unknownName}

	if u, err := p.users.FetchUser(ctx, b.UserID); err != nil {
		p.log.Warn().Err(err).Int64("booking_id", g.BookingID).Msg("resolve guest for payment")
	} else if name := u.FullName(); name != "" {
		row.GuestName = name
	}

	if h, err := p.hotels.FetchHotelByID(ctx, b.HotelID); err != nil {
		p.log.Warn().Err(err).Int64("booking_id", g.BookingID).Msg("resolve hotel for payment")
	} else if h.Name != "" {
		row.HotelName = h.Name
	}
	return row, nil
}

func (p *Payments) fail(err error) error {
	p.log.Error().Err(err).Msg("load payments")
	p.errMsg = MsgLoadPaymentsFailed
	return err
}

func (p *Payments) Rows() []PaymentRow {
	return p.rows
}

func (p *Payments) Error() string {
	return p.errMsg
}
