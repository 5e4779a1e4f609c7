package contact

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

// dependencies for the contact form endpoint
type Handler struct {
	timing  *botcheck.TimingTokenManager
	limiter *ratelimit.Limiter
}

// creates the contact form handler
func NewHandler(timing *botcheck.TimingTokenManager, limiter *ratelimit.Limiter) *Handler {
	return &Handler{timing: timing, limiter: limiter}
}

// accepts a contact form submission after bot checks and a strict
// per-IP submission limit
func (h *Handler) Submit(c *gin.Context) {
	ip := fingerprint.ClientIP(c.Request)

	policy := ratelimit.ContactForm
	res := h.limiter.CheckStrict("contact:"+ip, policy.MaxRequests, policy.Window, policy.BurstLimit, policy.BurstWindow)
	if !res.Allowed {
		logger.Info("contact submission rate limited", "ip", ip, "reason", res.Reason)
		httperr.TooManyRequests(c, res.Reason, 60)
		return
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.ValidationError(c, err)
		return
	}

	if len(strings.TrimSpace(req.Message)) < 10 {
		httperr.BadRequest(c, "message is too short", nil)
		return
	}

	verdict := h.timing.Check(botcheck.Input{
		Honeypot:    req.Website,
		TimingToken: req.FormToken,
		Content:     req.Message,
		Email:       req.Email,
	})
	if verdict.IsBot {
		// reasons stay server-side; the client sees a generic rejection
		logger.Warn("contact submission rejected",
			"ip", ip,
			"confidence", verdict.Confidence,
			"reasons", strings.Join(verdict.Reasons, "; "),
		)
		httperr.SubmissionRejected(c)
		return
	}

	email := botcheck.ValidateEmail(req.Email)
	if !email.Valid {
		httperr.BadRequest(c, "invalid email address", nil)
		return
	}

	// hand-off to the mail collaborator happens out of band; the core
	// only decides accept/reject
	logger.Info("contact submission accepted",
		"ip", ip,
		"subject", req.Subject,
		"disposable_email", email.IsDisposable,
	)

	c.JSON(http.StatusAccepted, SubmitResponse{Status: "accepted"})
}
