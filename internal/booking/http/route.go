package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/booking")
	group.Use(authMiddleware)
	{
		group.GET("", h.Get)
		group.POST("", h.Create)
		group.PUT("/:bookingId", h.Update)
	}
}
