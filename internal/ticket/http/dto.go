package http

import (
	"time"

	"github.com/eventpass/hotel-booking-backend/internal/ticket"
)

type TicketTypeResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Price         int64     `json:"price"`
	IsRemote      bool      `json:"isRemote"`
	IncludesHotel bool      `json:"includesHotel"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func NewTicketTypeResponse(tt *ticket.TicketType) TicketTypeResponse {
	return TicketTypeResponse{
		ID:            tt.ID,
		Name:          tt.Name,
		Price:         tt.Price,
		IsRemote:      tt.IsRemote,
		IncludesHotel: tt.IncludesHotel,
		CreatedAt:     tt.CreatedAt,
		UpdatedAt:     tt.UpdatedAt,
	}
}

type TicketResponse struct {
	ID         int64              `json:"id"`
	Status     string             `json:"status"`
	TicketType TicketTypeResponse `json:"TicketType"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

func NewTicketResponse(t *ticket.Ticket, tt *ticket.TicketType) TicketResponse {
	return TicketResponse{
		ID:         t.ID,
		Status:     string(t.Status),
		TicketType: NewTicketTypeResponse(tt),
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}
