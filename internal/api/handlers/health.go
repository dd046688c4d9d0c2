package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NolanFinn/Check-Splitter/internal/api/dto"
)

// Health handles GET /health for load balancer probes.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "healthy"})
}
