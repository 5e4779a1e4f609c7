package admin

import (
	"github.com/MihaiM21/47Gear-sub000/api/rest/reviews"
	"github.com/MihaiM21/47Gear-sub000/internal/shield"
	"github.com/gin-gonic/gin"
)

// registers the admin surface; the auth gate in front of these routes
// is an external collaborator (storefront session check)
func RegisterRoutes(api *gin.RouterGroup, reviewStore *reviews.Store, s *shield.Shield) {
	handler := NewHandler(reviewStore, s)

	adminGroup := api.Group("/admin")
	{
		adminGroup.GET("/reviews", handler.ListReviews)
		adminGroup.POST("/reviews/:id/approve", handler.ApproveReview)
		adminGroup.DELETE("/reviews/:id", handler.DeleteReview)
		adminGroup.GET("/abuse/stats", handler.AbuseStats)
	}
}
