package patterns

import (
	"math"
	"strings"
	"sync"
	"time"

	"github.com/MihaiM21/47Gear-sub000/internal/logger"
)

const (
	// accumulated score at which a client is considered suspicious
	SuspicionThreshold = 50

	// accumulated score at which the orchestrator blocks outright
	BlockThreshold = 80

	// entries idle longer than this are purged
	trackingTTL = time.Hour

	// how often the cleanup sweep runs
	cleanupInterval = 10 * time.Minute

	// how many recent request timestamps to keep per client for
	// interval-regularity analysis
	recentTimesCap = 10
)

// rolling per-client statistics; all mutation happens under the tracker lock
type RequestPattern struct {
	ClientID         string
	RequestCount     int
	FirstSeen        time.Time
	LastSeen         time.Time
	Endpoints        map[string]int
	UserAgentChanges int
	SuspicionScore   int

	lastUserAgent string
	recentTimes   []time.Time
}

// outcome of one tracked request
type Evaluation struct {
	Score   int
	Reasons []string
}

// process-wide request pattern tracker with periodic cleanup
type Tracker struct {
	mu       sync.Mutex
	patterns map[string]*RequestPattern
	done     chan struct{}
	closed   bool
}

// creates a tracker and starts its background cleanup sweep
func NewTracker() *Tracker {
	t := &Tracker{
		patterns: make(map[string]*RequestPattern),
		done:     make(chan struct{}),
	}

	go t.cleanupLoop()

	return t
}

// records one request for a client and evaluates anomaly signals;
// each triggered signal adds to the cumulative suspicion score
func (t *Tracker) Track(clientID, endpoint, userAgent string) Evaluation {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()

	pattern, exists := t.patterns[clientID]
	if !exists {
		pattern = &RequestPattern{
			ClientID:      clientID,
			FirstSeen:     now,
			Endpoints:     make(map[string]int),
			lastUserAgent: userAgent,
		}
		t.patterns[clientID] = pattern
	}

	pattern.RequestCount++
	pattern.LastSeen = now
	pattern.Endpoints[endpoint]++

	if userAgent != pattern.lastUserAgent {
		pattern.UserAgentChanges++
		pattern.lastUserAgent = userAgent
	}

	pattern.recentTimes = append(pattern.recentTimes, now)
	if len(pattern.recentTimes) > recentTimesCap {
		pattern.recentTimes = pattern.recentTimes[len(pattern.recentTimes)-recentTimesCap:]
	}

	eval := evaluateAnomalies(pattern, endpoint, now)
	pattern.SuspicionScore += eval.Score

	if eval.Score > 0 {
		logger.Advisory("request pattern anomaly",
			"client_id", clientID,
			"endpoint", endpoint,
			"added", eval.Score,
			"total", pattern.SuspicionScore,
			"reasons", strings.Join(eval.Reasons, "; "),
		)
	}

	return eval
}

// independent anomaly checks, each additive; caller holds the lock
func evaluateAnomalies(p *RequestPattern, endpoint string, now time.Time) Evaluation {
	eval := Evaluation{}

	// burst of requests from a client we only just met
	if now.Sub(p.FirstSeen) < time.Minute && p.RequestCount > 20 {
		eval.Score += 30
		eval.Reasons = append(eval.Reasons, "abnormally high request rate for new client")
	}

	// hammering one endpoint
	if p.Endpoints[endpoint] > 10 {
		eval.Score += 20
		eval.Reasons = append(eval.Reasons, "excessive requests to same endpoint")
	}

	// humans do not click at metronome intervals
	if p.RequestCount >= 5 && hasRegularIntervals(p.recentTimes) {
		eval.Score += 40
		eval.Reasons = append(eval.Reasons, "suspiciously regular request timing")
	}

	// scripted clients skip pages and hit the API directly
	if p.RequestCount > 10 && apiEndpointRatio(p.Endpoints) > 0.8 {
		eval.Score += 25
		eval.Reasons = append(eval.Reasons, "accessing mostly API endpoints")
	}

	return eval
}

// reports whether recent inter-request intervals are near-uniform
// (standard deviation under 20% of the mean)
func hasRegularIntervals(times []time.Time) bool {
	if len(times) < 5 {
		return false
	}

	intervals := make([]float64, 0, len(times)-1)
	for i := 1; i < len(times); i++ {
		intervals = append(intervals, times[i].Sub(times[i-1]).Seconds())
	}

	var sum float64
	for _, v := range intervals {
		sum += v
	}
	mean := sum / float64(len(intervals))

	if mean <= 0 {
		return false
	}

	var variance float64
	for _, v := range intervals {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(intervals))

	return math.Sqrt(variance) < 0.2*mean
}

// fraction of requests that hit /api/ paths
func apiEndpointRatio(endpoints map[string]int) float64 {
	total := 0
	api := 0

	for endpoint, count := range endpoints {
		total += count
		if strings.Contains(endpoint, "/api/") {
			api += count
		}
	}

	if total == 0 {
		return 0
	}

	return float64(api) / float64(total)
}

// returns the current suspicion score for a client (0 if untracked)
func (t *Tracker) Score(clientID string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	if pattern, exists := t.patterns[clientID]; exists {
		return pattern.SuspicionScore
	}

	return 0
}

// reports whether a client has crossed the suspicion threshold
func (t *Tracker) IsSuspicious(clientID string) bool {
	return t.Score(clientID) >= SuspicionThreshold
}

// drops all state for a client
func (t *Tracker) Reset(clientID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.patterns, clientID)
}

// returns the number of tracked clients
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.patterns)
}

// stops the background cleanup sweep
func (t *Tracker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.closed {
		t.closed = true
		close(t.done)
	}
}

func (t *Tracker) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-t.done:
			return
		case <-ticker.C:
			t.cleanup(time.Now())
		}
	}
}

// purges entries idle longer than the tracking TTL
func (t *Tracker) cleanup(now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	removed := 0
	for clientID, pattern := range t.patterns {
		if now.Sub(pattern.LastSeen) > trackingTTL {
			delete(t.patterns, clientID)
			removed++
		}
	}

	if removed > 0 {
		logger.Debug("pattern tracker cleanup", "removed", removed, "remaining", len(t.patterns))
	}
}
