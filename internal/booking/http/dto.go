package http

import (
	"time"

	"github.com/eventpass/hotel-booking-backend/internal/booking"
)

type BookRoomRequest struct {
	RoomID int64 `json:"roomId" binding:"required,min=1"`
}

// BookingParams binds the bookingId path parameter as an integer.
type BookingParams struct {
	BookingID int64 `uri:"bookingId" binding:"required,min=1"`
}

type RoomResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	HotelID   int64     `json:"hotelId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingResponse is the GET projection: booking id plus the embedded room.
type BookingResponse struct {
	ID   int64        `json:"id"`
	Room RoomResponse `json:"Room"`
}

func NewBookingResponse(b *booking.BookingWithRoom) BookingResponse {
	return BookingResponse{
		ID: b.ID,
		Room: RoomResponse{
			ID:        b.Room.ID,
			Name:      b.Room.Name,
			Capacity:  b.Room.Capacity,
			HotelID:   b.Room.HotelID,
			CreatedAt: b.Room.CreatedAt,
			UpdatedAt: b.Room.UpdatedAt,
		},
	}
}

// BookingIDResponse is the write acknowledgement for POST and PUT.
type BookingIDResponse struct {
	BookingID int64 `json:"bookingId"`
}
