package admin

import (
	"net/http"

	"github.com/MihaiM21/47Gear-sub000/api/rest/reviews"
	"github.com/MihaiM21/47Gear-sub000/internal/httperr"
	"github.com/MihaiM21/47Gear-sub000/internal/logger"
	"github.com/MihaiM21/47Gear-sub000/internal/shield"
	"github.com/gin-gonic/gin"
)

// dependencies for the moderation and observability surface
type Handler struct {
	reviews *reviews.Store
	shield  *shield.Shield
}

// creates the admin handler
func NewHandler(reviewStore *reviews.Store, s *shield.Shield) *Handler {
	return &Handler{reviews: reviewStore, shield: s}
}

// lists every review including pending ones
func (h *Handler) ListReviews(c *gin.Context) {
	all := h.reviews.List()

	c.JSON(http.StatusOK, reviews.ListResponse{
		Reviews: all,
		Count:   len(all),
	})
}

// approves a pending review; ?featured=true also features it
func (h *Handler) ApproveReview(c *gin.Context) {
	id := c.Param("id")
	featured := c.Query("featured") == "true"

	if !h.reviews.Approve(id, featured) {
		httperr.NotFound(c, "review")
		return
	}

	logger.Info("review approved", "review_id", id, "featured", featured)

	c.JSON(http.StatusOK, gin.H{"status": "approved"})
}

// deletes a review
func (h *Handler) DeleteReview(c *gin.Context) {
	id := c.Param("id")

	if !h.reviews.Delete(id) {
		httperr.NotFound(c, "review")
		return
	}

	logger.Info("review deleted", "review_id", id)

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// exposes abuse-mitigation counters for operators
func (h *Handler) AbuseStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.shield.Stats(c))
}
