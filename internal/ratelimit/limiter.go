package ratelimit

import (
	"sync"
	"time"

	"github.com/MihaiM21/47Gear-sub000/internal/logger"
)

const (
	// how often idle entries are swept
	cleanupInterval = 5 * time.Minute

	// entries idle longer than this are dropped by the sweep
	idleTTL = 5 * time.Minute

	// defaults for the burst tier of CheckStrict
	DefaultBurstLimit  = 5
	DefaultBurstWindow = 10 * time.Second
)

// outcome of a rate-limit check
type Result struct {
	Allowed   bool
	Remaining int
	ResetTime time.Time
	Reason    string
}

// per-identifier timestamped request history; only timestamps inside
// the active window survive pruning
type entry struct {
	requests []time.Time
}

// process-wide sliding-window rate limiter with periodic cleanup
type Limiter struct {
	mu      sync.Mutex
	entries map[string]*entry
	done    chan struct{}
	closed  bool
}

// creates a limiter and starts its background cleanup sweep
func NewLimiter() *Limiter {
	l := &Limiter{
		entries: make(map[string]*entry),
		done:    make(chan struct{}),
	}

	go l.cleanupLoop()

	return l
}

// evaluates the sliding window for an identifier: prunes timestamps
// older than the window, denies if the limit is already reached,
// otherwise records the request and allows it
func (l *Limiter) Check(identifier string, limit int, window time.Duration) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.check(identifier, limit, window, time.Now())
}

// caller holds the lock
func (l *Limiter) check(identifier string, limit int, window time.Duration, now time.Time) Result {
	e, exists := l.entries[identifier]
	if !exists {
		e = &entry{}
		l.entries[identifier] = e
	}

	cutoff := now.Add(-window)

	valid := e.requests[:0]
	for _, ts := range e.requests {
		if ts.After(cutoff) {
			valid = append(valid, ts)
		}
	}
	e.requests = valid

	if len(e.requests) >= limit {
		// the window slides open once the oldest surviving request ages out
		oldest := e.requests[0]
		for _, ts := range e.requests {
			if ts.Before(oldest) {
				oldest = ts
			}
		}

		return Result{
			Allowed:   false,
			Remaining: 0,
			ResetTime: oldest.Add(window),
		}
	}

	e.requests = append(e.requests, now)

	return Result{
		Allowed:   true,
		Remaining: limit - len(e.requests),
		ResetTime: now.Add(window),
	}
}

// two-tier check: a tight burst window evaluated first, then the
// sustained window; catches rapid-fire spikes a single sustained
// limit would miss
func (l *Limiter) CheckStrict(identifier string, maxRequests int, window time.Duration, burstLimit int, burstWindow time.Duration) Result {
	if burstLimit <= 0 {
		burstLimit = DefaultBurstLimit
	}
	if burstWindow <= 0 {
		burstWindow = DefaultBurstWindow
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()

	burst := l.check("burst:"+identifier, burstLimit, burstWindow, now)
	if !burst.Allowed {
		burst.Reason = "Too many requests in short time - possible bot behavior"
		return burst
	}

	sustained := l.check(identifier, maxRequests, window, now)
	if !sustained.Allowed {
		sustained.Reason = "Rate limit exceeded"
	}

	return sustained
}

// returns the number of tracked identifiers
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.entries)
}

// stops the background cleanup sweep
func (l *Limiter) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.closed {
		l.closed = true
		close(l.done)
	}
}

func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
			l.cleanup(time.Now())
		}
	}
}

// prunes every entry down to the idle TTL and drops the empty ones
func (l *Limiter) cleanup(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := now.Add(-idleTTL)
	removed := 0

	for identifier, e := range l.entries {
		valid := e.requests[:0]
		for _, ts := range e.requests {
			if ts.After(cutoff) {
				valid = append(valid, ts)
			}
		}
		e.requests = valid

		if len(e.requests) == 0 {
			delete(l.entries, identifier)
			removed++
		}
	}

	if removed > 0 {
		logger.Debug("rate limiter cleanup", "removed", removed, "remaining", len(l.entries))
	}
}
