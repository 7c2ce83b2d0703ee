package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/tickets")
	group.Use(authMiddleware)
	{
		group.GET("/types", h.ListTypes)
		group.GET("", h.Get)
	}
}
