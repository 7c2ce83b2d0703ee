package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/hotels")
	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.GET("/:hotelId", h.Get)
	}
}
