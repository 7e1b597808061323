package httpserver

import (
	"github.com/gin-gonic/gin"

	"integrated-bots/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "From Integrated Bots With Love"
	HealthVersion = "1.0.0"
	ServiceName   = "integrated-bots"
)

// rootInfo lists the available endpoints.
// @Summary Service Info
// @Description Service identity and endpoint directory
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Service info"
// @Router / [get]
func (srv *HTTPServer) rootInfo(c *gin.Context) {
	response.OK(c, gin.H{
		"service": ServiceName,
		"version": HealthVersion,
		"endpoints": []string{
			"POST /chat",
			"POST /classify",
			"POST /banking",
			"POST /cooking",
			"POST /finance",
			"POST /gpt_master",
			"POST /genz",
			"POST /genz/query",
			"GET /health",
			"GET /ui",
			"GET /swagger/index.html",
		},
	})
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
