package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers sign-up and sign-in routes. Both are public.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	g.POST("/users", h.SignUp)
	g.POST("/auth/sign-in", h.SignIn)
}
