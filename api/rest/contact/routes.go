package contact

import (
	"github.com/MihaiM21/47Gear-sub000/internal/botcheck"
	"github.com/MihaiM21/47Gear-sub000/internal/ratelimit"
	"github.com/gin-gonic/gin"
)

// registers contact form routes
func RegisterRoutes(api *gin.RouterGroup, timing *botcheck.TimingTokenManager, limiter *ratelimit.Limiter) {
	handler := NewHandler(timing, limiter)

	api.POST("/contact", handler.Submit)
}
