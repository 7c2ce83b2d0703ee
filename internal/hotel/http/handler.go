package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventpass/hotel-booking-backend/internal/auth"
	"github.com/eventpass/hotel-booking-backend/internal/hotel"
	"github.com/eventpass/hotel-booking-backend/internal/pkg/response"
)

type Handler struct {
	service hotel.Service
}

func NewHandler(service hotel.Service) *Handler {
	return &Handler{service: service}
}

// List returns all hotels visible to the authenticated user.
func (h *Handler) List(c *gin.Context) {
	var req ListHotelsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	userID := auth.GetUserID(c)

	filter := hotel.Filter{Page: req.Page, PageSize: req.PageSize}
	hotels, total, err := h.service.List(c.Request.Context(), userID, filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]HotelResponse, len(hotels))
	for i, ht := range hotels {
		items[i] = NewHotelResponse(ht)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, filter.Page, filter.PageSize, total))
}

// Get returns one hotel with its rooms and their occupancy.
func (h *Handler) Get(c *gin.Context) {
	var params HotelParams
	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hotel id"})
		return
	}

	userID := auth.GetUserID(c)

	ht, err := h.service.GetWithRooms(c.Request.Context(), userID, params.HotelID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewHotelResponse(ht))
}
