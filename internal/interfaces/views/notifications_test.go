package views

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelhub/hotel-booking/internal/domain/notification"
)

func inboxFixture() []notification.Notification {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	items := make([]notification.Notification, 0, 7)
	for i := int64(1); i <= 7; i++ {
		items = append(items, notification.Notification{
			ID:        i,
			UserID:    9,
			Message:   "booking update",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
			Read:      i%2 == 0,
		})
	}
	return items
}

func ids(items []notification.Notification) []int64 {
	out := make([]int64, 0, len(items))
	for _, n := range items {
		out = append(out, n.ID)
	}
	return out
}

func TestNotificationsLoadSortsUnreadFirst(t *testing.T) {
	n := NewNotifications(&fakeInbox{items: inboxFixture()}, 9, 5, zerolog.Nop())
	require.NoError(t, n.Load(context.Background()))

	view := n.View()
	assert.Equal(t, 2, view.TotalPages)
	assert.Equal(t, []int64{7, 5, 3, 1, 6}, ids(view.Items))
	assert.Equal(t, 4, n.Unread())

	require.True(t, n.GoTo(2))
	assert.Equal(t, []int64{4, 2}, ids(n.View().Items))
	assert.False(t, n.GoTo(3))
}

func TestNotificationsLoadError(t *testing.T) {
	inbox := &fakeInbox{items: inboxFixture()}
	n := NewNotifications(inbox, 9, 5, zerolog.Nop())
	require.NoError(t, n.Load(context.Background()))

	inbox.err = errBackend
	require.ErrorIs(t, n.Load(context.Background()), errBackend)
	assert.Equal(t, 7, n.View().TotalItems)
}

func TestNotificationsMarkRead(t *testing.T) {
	inbox := &fakeInbox{items: inboxFixture()}
	n := NewNotifications(inbox, 9, 5, zerolog.Nop())
	require.NoError(t, n.Load(context.Background()))

	msg, err := n.MarkRead(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Notification marked as read", msg)
	assert.Equal(t, int64(7), inbox.markedOne)
	assert.Equal(t, 3, n.Unread())
	assert.Equal(t, []int64{5, 3, 1, 7, 6}, ids(n.View().Items))
}

func TestNotificationsMarkReadFailureKeepsState(t *testing.T) {
	inbox := &fakeInbox{items: inboxFixture()}
	n := NewNotifications(inbox, 9, 5, zerolog.Nop())
	require.NoError(t, n.Load(context.Background()))

	inbox.err = errBackend
	_, err := n.MarkRead(context.Background(), 7)
	require.ErrorIs(t, err, errBackend)
	assert.Equal(t, 4, n.Unread())
}

func TestNotificationsMarkAllRead(t *testing.T) {
	inbox := &fakeInbox{items: inboxFixture()}
	n := NewNotifications(inbox, 9, 5, zerolog.Nop())
	require.NoError(t, n.Load(context.Background()))

	msg, err := n.MarkAllRead(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "All notifications marked as read", msg)
	assert.Equal(t, int64(9), inbox.markedAll)
	assert.Zero(t, n.Unread())
	assert.Equal(t, []int64{7, 6, 5, 4, 3}, ids(n.View().Items))
}
