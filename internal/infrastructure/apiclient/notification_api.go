package apiclient

import (
	"context"
	"net/http"

	"github.com/hotelhub/hotel-booking/internal/domain/envelope"
	"github.com/hotelhub/hotel-booking/internal/domain/notification"
)

const (
	msgMarkReadFailed    = "Failed to mark notification as read"
	msgMarkAllReadFailed = "Failed to mark all notifications as read"
)

// NotificationAPI wraps the notification service. Its list endpoints answer
// with bare JSON arrays instead of envelopes.
type NotificationAPI struct {
	client *Client
}

func NewNotificationAPI(client *Client) *NotificationAPI {
	return &NotificationAPI{client: client}
}

type wireNotification struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	CreatedAt string `json:"createdAt"`
	Read      bool   `json:"read"`
}

func (w wireNotification) toDomain() notification.Notification {
	return notification.Notification{
		ID:        w.ID,
		UserID:    w.UserID,
		Message:   w.Message,
		Type:      w.Type,
		CreatedAt: parseTimestamp(w.CreatedAt),
		Read:      w.Read,
	}
}

func (a *NotificationAPI) list(ctx context.Context, op, route string, params map[string]string) ([]notification.Notification, error) {
	items, err := send[[]wireNotification](ctx, a.client, call{
		op:         op,
		method:     http.MethodGet,
		route:      route,
		pathParams: params,
	})
	if err != nil {
		return nil, err
	}
	out := make([]notification.Notification, 0, len(items))
	for _, item := range items {
		out = append(out, item.toDomain())
	}
	return out, nil
}

func (a *NotificationAPI) NotificationsForUser(ctx context.Context, userID int64) ([]notification.Notification, error) {
	return a.list(ctx, "notifications_for_user", "/notifications/user/{id}",
		map[string]string{"id": idParam(userID)})
}

func (a *NotificationAPI) ReadNotificationsForUser(ctx context.Context, userID int64) ([]notification.Notification, error) {
	return a.list(ctx, "read_notifications_for_user", "/notifications/user/{id}/read",
		map[string]string{"id": idParam(userID)})
}

func (a *NotificationAPI) UnreadNotificationsForUser(ctx context.Context, userID int64) ([]notification.Notification, error) {
	return a.list(ctx, "unread_notifications_for_user", "/notifications/user/{id}/unread",
		map[string]string{"id": idParam(userID)})
}

func (a *NotificationAPI) NotificationsByType(ctx context.Context, userID int64, kind string) ([]notification.Notification, error) {
	return a.list(ctx, "notifications_by_type", "/notifications/user/{id}/type/{type}",
		map[string]string{"id": idParam(userID), "type": kind})
}

// MarkNotificationRead marks one notification read and returns the server's
// confirmation.
func (a *NotificationAPI) MarkNotificationRead(ctx context.Context, id int64) (string, error) {
	return a.mark(ctx, "mark_notification_read", msgMarkReadFailed, "/notifications/{id}/read", id)
}

// MarkAllNotificationsRead marks every notification of a user read.
func (a *NotificationAPI) MarkAllNotificationsRead(ctx context.Context, userID int64) (string, error) {
	return a.mark(ctx, "mark_all_notifications_read", msgMarkAllReadFailed, "/notifications/user/{id}/read", userID)
}

func (a *NotificationAPI) mark(ctx context.Context, op, fallback, route string, id int64) (string, error) {
	env, err := send[envelope.MessageEnvelope](ctx, a.client, call{
		op:         op,
		method:     http.MethodPut,
		route:      route,
		pathParams: map[string]string{"id": idParam(id)},
	})
	if err != nil {
		return "", err
	}
	return unwrapMessage(a.client, op, &env, fallback)
}
