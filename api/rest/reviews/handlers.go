package reviews

import (
	"net/http"
	"strings"

	"github.com/MihaiM21/47Gear-sub000/internal/botcheck"
	"github.com/MihaiM21/47Gear-sub000/internal/fingerprint"
	"github.com/MihaiM21/47Gear-sub000/internal/httperr"
	"github.com/MihaiM21/47Gear-sub000/internal/logger"
	"github.com/MihaiM21/47Gear-sub000/internal/ratelimit"
	"github.com/gin-gonic/gin"
)

// dependencies for the review endpoints
type Handler struct {
	store   *Store
	timing  *botcheck.TimingTokenManager
	limiter *ratelimit.Limiter
}

// creates the review handler
func NewHandler(store *Store, timing *botcheck.TimingTokenManager, limiter *ratelimit.Limiter) *Handler {
	return &Handler{store: store, timing: timing, limiter: limiter}
}

// accepts a review submission after bot checks and a strict per-IP limit
func (h *Handler) Submit(c *gin.Context) {
	ip := fingerprint.ClientIP(c.Request)

	policy := ratelimit.ReviewSubmission
	res := h.limiter.CheckStrict("review:"+ip, policy.MaxRequests, policy.Window, policy.BurstLimit, policy.BurstWindow)
	if !res.Allowed {
		logger.Info("review submission rate limited", "ip", ip, "reason", res.Reason)
		httperr.TooManyRequests(c, res.Reason, 60)
		return
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.ValidationError(c, err)
		return
	}

	if req.Rating < 1 || req.Rating > 5 {
		httperr.BadRequest(c, "rating must be between 1 and 5", nil)
		return
	}

	verdict := h.timing.Check(botcheck.Input{
		Honeypot:    req.Website,
		TimingToken: req.FormToken,
		Content:     req.Content,
		Email:       req.Email,
	})
	if verdict.IsBot {
		logger.Warn("review submission rejected",
			"ip", ip,
			"product_id", req.ProductID,
			"confidence", verdict.Confidence,
			"reasons", strings.Join(verdict.Reasons, "; "),
		)
		httperr.SubmissionRejected(c)
		return
	}

	if email := botcheck.ValidateEmail(req.Email); !email.Valid {
		httperr.BadRequest(c, "invalid email address", nil)
		return
	}

	id := h.store.Add(&Review{
		ProductID: req.ProductID,
		Author:    req.Author,
		Email:     req.Email,
		Rating:    req.Rating,
		Content:   req.Content,
	})

	logger.Info("review submitted for moderation", "ip", ip, "review_id", id, "product_id", req.ProductID)

	c.JSON(http.StatusCreated, gin.H{
		"id":     id,
		"status": "pending_review",
	})
}

// serves approved featured reviews (public read, exempt from the
// generic rate limiter)
func (h *Handler) Featured(c *gin.Context) {
	featured := h.store.Featured()

	c.JSON(http.StatusOK, ListResponse{
		Reviews: featured,
		Count:   len(featured),
	})
}
