package views

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/hotelhub/hotel-booking/internal/domain/dropdown"
	"github.com/hotelhub/hotel-booking/internal/domain/notification"
)

// InboxSource lists a user's notifications.
type InboxSource interface {
	NotificationsForUser(ctx context.Context, userID int64) ([]notification.Notification, error)
}

// Header is the state of the page header: which menu is open, the unread
// badge and the selected stay dates.
type Header struct {
	menus  *dropdown.Tracker
	inbox  InboxSource
	userID int64
	log    zerolog.Logger

	unread   int
	checkIn  time.Time
	checkOut time.Time
}

func NewHeader(inbox InboxSource, userID int64, log zerolog.Logger) *Header {
	return &Header{
		menus:  dropdown.NewTracker(),
		inbox:  inbox,
		userID: userID,
		log:    log,
	}
}

// Toggle opens id, or closes it when it is already open.
func (h *Header) Toggle(id dropdown.ID) {
	h.menus.Toggle(id)
}

// CloseAll handles a click outside the header.
func (h *Header) CloseAll() {
	h.menus.CloseAll()
}

func (h *Header) Active() dropdown.ID {
	return h.menus.Active()
}

func (h *Header) IsOpen(id dropdown.ID) bool {
	return h.menus.IsOpen(id)
}

// RefreshUnread recounts unread notifications. The badge keeps its last
// value when the fetch fails.
func (h *Header) RefreshUnread(ctx context.Context) error {
	items, err := h.inbox.NotificationsForUser(ctx, h.userID)
	if err != nil {
		h.log.Warn().Err(err).Msg("refresh unread notifications")
		return err
	}
	h.unread = notification.CountUnread(items)
	return nil
}

func (h *Header) Unread() int {
	return h.unread
}

// SetStay records the calendar selection and closes the calendar once both
// dates are chosen.
func (h *Header) SetStay(checkIn, checkOut time.Time) {
	h.checkIn, h.checkOut = checkIn, checkOut
	if !checkIn.IsZero() && !checkOut.IsZero() && h.menus.IsOpen(dropdown.Calendar) {
		h.menus.CloseAll()
	}
}

func (h *Header) Stay() (checkIn, checkOut time.Time) {
	return h.checkIn, h.checkOut
}

// Initials builds the avatar text from the first letters of both names,
// falling back to "U".
func Initials(firstName, lastName string) string {
	out := firstRune(firstName) + firstRune(lastName)
	if out == "" {
		return "U"
	}
	return out
}

func firstRune(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return ""
	}
	return string(r)
}
