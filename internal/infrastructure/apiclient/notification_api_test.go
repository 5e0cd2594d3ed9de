package apiclient

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelhub/hotel-booking/internal/domain/envelope"
)

func TestNotificationsForUserMapsBareArray(t *testing.T) {
	api := NewNotificationAPI(newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/notifications/user/5", r.URL.Path)
		writeJSON(w, http.StatusOK, `[
			{"id": 1, "userId": 5, "message": "Booking confirmed", "type": "BOOKING", "createdAt": "2025-03-01T10:15:30", "read": false},
			{"id": 2, "userId": 5, "message": "Promo", "type": "PROMOTION", "createdAt": "2025-03-02T08:00:00Z", "read": true}
		]`)
	}))

	got, err := api.NotificationsForUser(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.False(t, got[0].Read)
	assert.True(t, got[1].Read)
	assert.Equal(t, time.Date(2025, time.March, 1, 10, 15, 30, 0, time.UTC), got[0].CreatedAt)
}

func TestNotificationsForUserNullIsEmpty(t *testing.T) {
	api := NewNotificationAPI(newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `null`)
	}))

	got, err := api.UnreadNotificationsForUser(context.Background(), 5)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestNotificationsByTypePath(t *testing.T) {
	api := NewNotificationAPI(newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/notifications/user/5/type/BOOKING", r.URL.Path)
		writeJSON(w, http.StatusOK, `[]`)
	}))

	_, err := api.NotificationsByType(context.Background(), 5, "BOOKING")
	require.NoError(t, err)
}

func TestMarkNotificationRead(t *testing.T) {
	api := NewNotificationAPI(newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/notifications/9/read", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"message": "Notification marked as read"}`)
	}))

	msg, err := api.MarkNotificationRead(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, "Notification marked as read", msg)
}

func TestMarkAllNotificationsReadWithoutMessage(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{`{"error": "User has no notifications"}`, "User has no notifications"},
		{`{"data": {"updated": 3}}`, "Failed to mark all notifications as read"},
	}

	for _, tt := range tests {
		api := NewNotificationAPI(newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/notifications/user/5/read", r.URL.Path)
			writeJSON(w, http.StatusOK, tt.body)
		}))

		_, err := api.MarkAllNotificationsRead(context.Background(), 5)
		require.ErrorIs(t, err, envelope.ErrMessageMissing)
		assert.Equal(t, tt.want, err.Error())
	}
}
