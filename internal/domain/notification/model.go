package notification

import (
	"sort"
	"time"
)

// Notification is one inbox entry. The notification service sends the read
// flag as "read".
type Notification struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
	Read      bool      `json:"read"`
}

// SortForInbox returns a copy ordered unread first, newest first within each
// group.
func SortForInbox(in []Notification) []Notification {
	out := make([]Notification, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Read != out[j].Read {
			return !out[i].Read
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// CountUnread counts notifications not yet read.
func CountUnread(in []Notification) int {
	n := 0
	for _, x := range in {
		if !x.Read {
			n++
		}
	}
	return n
}
