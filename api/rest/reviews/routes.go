package reviews

import (
	"github.com/MihaiM21/47Gear-sub000/internal/botcheck"
	"github.com/MihaiM21/47Gear-sub000/internal/ratelimit"
	"github.com/gin-gonic/gin"
)

// registers public review routes
func RegisterRoutes(api *gin.RouterGroup, store *Store, timing *botcheck.TimingTokenManager, limiter *ratelimit.Limiter) {
	handler := NewHandler(store, timing, limiter)

	api.POST("/reviews", handler.Submit)
	api.GET("/reviews/featured", handler.Featured)
}
