package http

import (
	"time"

	"github.com/eventpass/hotel-booking-backend/internal/hotel"
	"github.com/eventpass/hotel-booking-backend/internal/pkg/request"
)

// ListHotelsRequest defines query parameters for listing hotels.
type ListHotelsRequest struct {
	request.ListParams
}

// HotelParams binds the hotel id path parameter.
type HotelParams struct {
	HotelID int64 `uri:"hotelId" binding:"required,min=1"`
}

type RoomResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Capacity    int       `json:"capacity"`
	HotelID     int64     `json:"hotelId"`
	BookedCount int       `json:"bookedCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewRoomResponse(r hotel.Room) RoomResponse {
	return RoomResponse{
		ID:          r.ID,
		Name:        r.Name,
		Capacity:    r.Capacity,
		HotelID:     r.HotelID,
		BookedCount: r.BookedCount,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type HotelResponse struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Image     string         `json:"image"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	Rooms     []RoomResponse `json:"Rooms,omitempty"`
}

func NewHotelResponse(h *hotel.Hotel) HotelResponse {
	resp := HotelResponse{
		ID:        h.ID,
		Name:      h.Name,
		Image:     h.Image,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
	for _, r := range h.Rooms {
		resp.Rooms = append(resp.Rooms, NewRoomResponse(r))
	}
	return resp
}
