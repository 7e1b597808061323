package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the routing endpoints onto the group.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/chat", h.Chat)
	rg.POST("/classify", h.Classify)
}
