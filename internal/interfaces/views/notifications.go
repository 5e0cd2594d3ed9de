package views

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/hotelhub/hotel-booking/internal/domain/notification"
	"github.com/hotelhub/hotel-booking/internal/domain/pagination"
)

// NotificationSource is the notification API as used by the inbox.
type NotificationSource interface {
	InboxSource
	MarkNotificationRead(ctx context.Context, id int64) (string, error)
	MarkAllNotificationsRead(ctx context.Context, userID int64) (string, error)
}

// Notifications is the paged inbox of one user, unread first.
type Notifications struct {
	source  NotificationSource
	userID  int64
	perPage int
	log     zerolog.Logger

	items []notification.Notification
	pager *pagination.Paginator
}

func NewNotifications(source NotificationSource, userID int64, perPage int, log zerolog.Logger) *Notifications {
	return &Notifications{
		source:  source,
		userID:  userID,
		perPage: perPage,
		log:     log,
		pager:   pagination.New(),
	}
}

// Load fetches and sorts the inbox. The current page is kept.
func (n *Notifications) Load(ctx context.Context) error {
	items, err := n.source.NotificationsForUser(ctx, n.userID)
	if err != nil {
		n.log.Error().Err(err).Msg("load notifications")
		return err
	}
	n.items = notification.SortForInbox(items)
	return nil
}

// View returns the current page.
func (n *Notifications) View() pagination.View[notification.Notification] {
	return pagination.ComputeView(n.pager, n.items, n.perPage)
}

// GoTo moves to page n when it exists.
func (n *Notifications) GoTo(page int) bool {
	return n.pager.GoTo(page, pagination.TotalPages(len(n.items), n.perPage))
}

func (n *Notifications) Unread() int {
	return notification.CountUnread(n.items)
}

// MarkRead marks one notification read on the server, then locally.
func (n *Notifications) MarkRead(ctx context.Context, id int64) (string, error) {
	msg, err := n.source.MarkNotificationRead(ctx, id)
	if err != nil {
		return "", err
	}
	for i := range n.items {
		if n.items[i].ID == id {
			n.items[i].Read = true
		}
	}
	n.items = notification.SortForInbox(n.items)
	return msg, nil
}

// MarkAllRead marks the whole inbox read.
func (n *Notifications) MarkAllRead(ctx context.Context) (string, error) {
	msg, err := n.source.MarkAllNotificationsRead(ctx, n.userID)
	if err != nil {
		return "", err
	}
	for i := range n.items {
		n.items[i].Read = true
	}
	n.items = notification.SortForInbox(n.items)
	return msg, nil
}
