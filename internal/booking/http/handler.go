package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventpass/hotel-booking-backend/internal/auth"
	"github.com/eventpass/hotel-booking-backend/internal/booking"
	"github.com/eventpass/hotel-booking-backend/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

// Get returns the authenticated user's booking with its room projection.
func (h *Handler) Get(c *gin.Context) {
	userID := auth.GetUserID(c)

	b, err := h.service.Get(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

// Create reserves a room for the authenticated user and returns the new
// booking id.
func (h *Handler) Create(c *gin.Context) {
	var req BookRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	userID := auth.GetUserID(c)

	b, err := h.service.Create(c.Request.Context(), userID, req.RoomID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, BookingIDResponse{BookingID: b.ID})
}

// Update moves the authenticated user's booking to another room.
func (h *Handler) Update(c *gin.Context) {
	var params BookingParams
	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	var req BookRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	userID := auth.GetUserID(c)

	b, err := h.service.Update(c.Request.Context(), userID, req.RoomID, params.BookingID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, BookingIDResponse{BookingID: b.ID})
}
