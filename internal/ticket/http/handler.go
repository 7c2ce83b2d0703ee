package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventpass/hotel-booking-backend/internal/auth"
	"github.com/eventpass/hotel-booking-backend/internal/pkg/response"
	"github.com/eventpass/hotel-booking-backend/internal/ticket"
)

type Handler struct {
	service ticket.Service
}

func NewHandler(service ticket.Service) *Handler {
	return &Handler{service: service}
}

// ListTypes returns the ticket type catalog.
func (h *Handler) ListTypes(c *gin.Context) {
	types, err := h.service.TypesForSale(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]TicketTypeResponse, len(types))
	for i, tt := range types {
		items[i] = NewTicketTypeResponse(tt)
	}

	c.JSON(http.StatusOK, items)
}

// Get returns the authenticated user's ticket with its type.
func (h *Handler) Get(c *gin.Context) {
	userID := auth.GetUserID(c)

	t, tt, err := h.service.TicketForUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewTicketResponse(t, tt))
}
