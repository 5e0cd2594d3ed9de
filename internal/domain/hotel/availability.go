package hotel

import (
	"fmt"
	"strconv"
	"strings"
)

// BookedRoom is the minimal view of a booking needed to hide taken rooms.
type BookedRoom struct {
	HotelID int64
	RoomID  int64
}

func roomKey(hotelID, roomID int64) string {
	return fmt.Sprintf("%d-%d", hotelID, roomID)
}

// FilterAvailable removes booked rooms from each hotel and drops hotels that
// have no room left. The input slice is not modified.
func FilterAvailable(hotels []Hotel, booked []BookedRoom) []Hotel {
	if len(booked) == 0 {
		return hotels
	}

	taken := make(map[string]struct{}, len(booked))
	for _, b := range booked {
		taken[roomKey(b.HotelID, b.RoomID)] = struct{}{}
	}

	out := make([]Hotel, 0, len(hotels))
	for _, h := range hotels {
		rooms := make([]Room, 0, len(h.Rooms))
		for _, r := range h.Rooms {
			if _, ok := taken[roomKey(h.ID, r.ID.RoomID)]; ok {
				continue
			}
			rooms = append(rooms, r)
		}
		if len(rooms) == 0 {
			continue
		}
		h.Rooms = rooms
		out = append(out, h)
	}
	return out
}

// FormatAMPM turns a "HH:MM" check-in/out time into "h:MM AM/PM". Input that
// does not parse is returned unchanged.
func FormatAMPM(hhmm string) string {
	parts := strings.SplitN(strings.TrimSpace(hhmm), ":", 3)
	if len(parts) < 2 {
		return hhmm
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return hhmm
	}

	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, m, period)
}
