package hotel

import "time"

// Hotel is a lodging option offered to hotel-inclusive ticket holders.
type Hotel struct {
	ID        int64
	Name      string
	Image     string
	CreatedAt time.Time
	UpdatedAt time.Time
	Rooms     []Room
}

// Room is a bookable hotel unit with fixed capacity.
// BookedCount is the number of active bookings currently holding the room;
// it must never exceed Capacity.
type Room struct {
	ID          int64
	Name        string
	Capacity    int
	HotelID     int64
	BookedCount int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Filter defines parameters for listing hotels.
type Filter struct {
	Page     int
	PageSize int
}
