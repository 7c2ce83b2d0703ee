package booking

import (
	"errors"
	"time"
)

// Storage-level sentinels raised by the repository's atomic writes. They are
// re-checks of conditions the service already validated; the service maps
// them back to domain errors when the race window closes against us.
var (
	ErrRoomFull     = errors.New("room has no free capacity")
	ErrRoomNotFound = errors.New("room not found")
	ErrNotFound     = errors.New("booking not found")
)

// Booking is a user's reservation of a specific room. A user holds at most
// one active booking.
type Booking struct {
	ID        int64
	UserID    int64
	RoomID    int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RoomSummary is the room projection embedded in a booking response.
// Only these fields are exposed; everything else stays behind the
// repository boundary.
type RoomSummary struct {
	ID        int64
	Name      string
	Capacity  int
	HotelID   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookingWithRoom is the read model for a user's current booking.
type BookingWithRoom struct {
	ID   int64
	Room RoomSummary
}
