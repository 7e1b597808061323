package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the direct persona endpoints onto the group.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/banking", h.Banking)
	rg.POST("/cooking", h.Cooking)
	rg.POST("/finance", h.Finance)
	rg.POST("/gpt_master", h.GPTMaster)
	rg.POST("/genz", h.GenZ)
	rg.POST("/genz/query", h.GenZQuery)
}
