package shield

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MihaiM21/47Gear-sub000/internal/blocklist"
	"github.com/MihaiM21/47Gear-sub000/internal/botcheck"
	"github.com/MihaiM21/47Gear-sub000/internal/config"
	"github.com/MihaiM21/47Gear-sub000/internal/fingerprint"
	"github.com/MihaiM21/47Gear-sub000/internal/httperr"
	"github.com/MihaiM21/47Gear-sub000/internal/logger"
	"github.com/MihaiM21/47Gear-sub000/internal/patterns"
	"github.com/MihaiM21/47Gear-sub000/internal/ratelimit"
	"github.com/gin-gonic/gin"
)

const (
	// confidence at which automated POSTs are refused outright
	automationBlockThreshold = 80

	// ceiling never tightens below this many requests per window
	minTightenedLimit = 10

	// how long pattern-based blocks last
	patternBlockTTL = time.Hour
)

// orchestrates all abuse-mitigation components per inbound request
type Shield struct {
	cfg       *config.Config
	limiter   *ratelimit.Limiter
	tracker   *patterns.Tracker
	blocklist blocklist.Store
	csp       string
}

// aggregate counters for the admin stats surface
type Stats struct {
	TrackedClients int `json:"tracked_clients"`
	LimiterEntries int `json:"limiter_entries"`
	BlockedClients int `json:"blocked_clients"`
}

// creates the orchestrator over the shared stateful components
func New(cfg *config.Config, limiter *ratelimit.Limiter, tracker *patterns.Tracker, store blocklist.Store) *Shield {
	return &Shield{
		cfg:       cfg,
		limiter:   limiter,
		tracker:   tracker,
		blocklist: store,
		csp:       buildCSP(cfg.CDNHost),
	}
}

// returns the middleware applied to every inbound request.
//
// Order matters: headers are attached first so denials carry them too;
// localhost and static assets bypass heuristics; only explicit
// threshold crossings deny - everything else is advisory and the
// pipeline fails open.
func (s *Shield) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		class := ClassifyRoute(path)
		if class == ClassStatic {
			c.Next()
			return
		}

		applySecurityHeaders(c, s.csp)

		policy := class.Policy()
		limit := policy.MaxRequests
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))

		ip := fingerprint.ClientIP(c.Request)

		// fail open in development and for local traffic
		if !s.cfg.ShieldEnabled || s.cfg.IsDevelopment() || isLocalClient(ip) {
			c.Next()
			return
		}

		fp := fingerprint.New(c.Request)

		if s.isBlocked(c, ip, fp.ID) {
			httperr.Forbidden(c, "access temporarily restricted")
			return
		}

		if class == ClassAPI {
			if !s.runAPIChecks(c, ip, fp, path) {
				return
			}

			// a bot-looking user-agent on a write gets a tighter ceiling
			if c.Request.Method == http.MethodPost && botcheck.IsSuspiciousUserAgent(fp.UserAgent) {
				limit = max(policy.MaxRequests/4, minTightenedLimit)
				c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
			}
		}

		if class.RateLimited() {
			res := s.limiter.Check(fingerprint.ClientIdentifier(c.Request), limit, policy.Window)
			if !res.Allowed {
				logger.Info("rate limit exceeded", "ip", ip, "path", path, "limit", limit)
				httperr.TooManyRequests(c, "too many requests, please slow down", 60)
				return
			}
		}

		c.Next()
	}
}

// heuristic pipeline for non-public API routes; returns false when the
// request was denied
func (s *Shield) runAPIChecks(c *gin.Context, ip string, fp *fingerprint.ClientFingerprint, path string) bool {
	// private or malformed source addresses are logged, never blocking
	if reason := ipReputation(ip); reason != "" {
		logger.Advisory("ip reputation flag", "ip", ip, "path", path, "reason", reason)
	}

	auto := botcheck.DetectAutomation(c.Request)
	if auto.Confidence >= automationBlockThreshold && c.Request.Method == http.MethodPost {
		logger.Warn("automated client refused",
			"ip", ip,
			"path", path,
			"confidence", auto.Confidence,
			"indicators", strings.Join(auto.Indicators, "; "),
		)
		httperr.Forbidden(c, "automated requests are not accepted")
		return false
	} else if auto.IsAutomated {
		logger.Advisory("automation suspected", "ip", ip, "path", path, "confidence", auto.Confidence)
	}

	s.tracker.Track(fp.ID, path, fp.UserAgent)

	if score := s.tracker.Score(fp.ID); score >= patterns.BlockThreshold {
		logger.Warn("pattern threshold crossed, blocking client",
			"ip", ip,
			"client_id", fp.ID,
			"score", score,
		)

		ctx := c.Request.Context()
		if err := s.blocklist.Block(ctx, ip, patternBlockTTL); err != nil {
			logger.ErrorErr(err, "failed to block ip", "ip", ip)
		}
		if err := s.blocklist.Block(ctx, fp.ID, patternBlockTTL); err != nil {
			logger.ErrorErr(err, "failed to block fingerprint", "client_id", fp.ID)
		}

		httperr.TooManyRequests(c, "request pattern indicates automated access", 3600)
		return false
	}

	if suspicious := botcheck.DetectSuspiciousPatterns(c.Request); suspicious.Suspicious {
		logger.Advisory("suspicious request shape",
			"ip", ip,
			"path", path,
			"reasons", strings.Join(suspicious.Reasons, "; "),
		)
	}

	return true
}

// blocklist membership; store errors fail open
func (s *Shield) isBlocked(c *gin.Context, ip, fingerprintID string) bool {
	ctx := c.Request.Context()

	for _, identifier := range []string{ip, fingerprintID} {
		blocked, err := s.blocklist.IsBlocked(ctx, identifier)
		if err != nil {
			logger.ErrorErr(err, "blocklist lookup failed", "identifier", identifier)
			continue
		}
		if blocked {
			return true
		}
	}

	return false
}

// returns aggregate counters for the admin stats endpoint
func (s *Shield) Stats(c *gin.Context) Stats {
	stats := Stats{
		TrackedClients: s.tracker.Len(),
		LimiterEntries: s.limiter.Len(),
	}

	if counter, ok := s.blocklist.(blocklist.Counter); ok {
		if n, err := counter.Count(c.Request.Context()); err == nil {
			stats.BlockedClients = n
		}
	}

	return stats
}

// flags private-range or unparseable source addresses
func ipReputation(ip string) string {
	if ip == "unknown" {
		return "missing forwarding headers"
	}

	parsed := net.ParseIP(ip)
	if parsed == nil {
		return "malformed ip"
	}

	if parsed.IsPrivate() || parsed.IsLinkLocalUnicast() {
		return "private address range"
	}

	return ""
}

// localhost traffic bypasses heuristics (local dev and health probes)
func isLocalClient(ip string) bool {
	return ip == "127.0.0.1" || ip == "::1" || ip == "localhost"
}
