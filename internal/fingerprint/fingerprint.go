package fingerprint

import (
	"fmt"
	"hash/fnv"
	"net/http"
	"strings"
	"time"
)

// client-hint headers worth capturing; anything else is noise
var hintHeaders = []string{
	"Sec-CH-UA",
	"Sec-CH-UA-Platform",
	"Sec-CH-UA-Mobile",
	"Sec-CH-UA-Full-Version-List",
	"DNT",
	"Upgrade-Insecure-Requests",
}

// derived per-request client identity; never mutated after creation.
// The id is a tracking key for abuse heuristics, not a security boundary.
type ClientFingerprint struct {
	ID        string
	IP        string
	UserAgent string
	Language  string
	Timestamp time.Time
	Headers   map[string]string
}

// builds a fingerprint from the forwarding headers, user-agent,
// language and the client-hint whitelist
func New(r *http.Request) *ClientFingerprint {
	ip := ClientIP(r)
	userAgent := r.Header.Get("User-Agent")
	language := r.Header.Get("Accept-Language")

	headers := make(map[string]string, len(hintHeaders))
	for _, name := range hintHeaders {
		if value := r.Header.Get(name); value != "" {
			headers[name] = value
		}
	}

	return &ClientFingerprint{
		ID:        deriveID(ip, userAgent, language),
		IP:        ip,
		UserAgent: userAgent,
		Language:  language,
		Timestamp: time.Now(),
		Headers:   headers,
	}
}

// extracts the client IP: first X-Forwarded-For value, then X-Real-IP,
// then "unknown"; never fails
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first := strings.TrimSpace(strings.Split(forwarded, ",")[0])
		if first != "" {
			return first
		}
	}

	if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); realIP != "" {
		return realIP
	}

	return "unknown"
}

// returns the rate-limit identity for a client: IP plus a truncated
// user-agent prefix, deterministic across calls
func ClientIdentifier(r *http.Request) string {
	userAgent := r.Header.Get("User-Agent")
	if len(userAgent) > 50 {
		userAgent = userAgent[:50]
	}

	return ClientIP(r) + ":" + userAgent
}

// deterministic FNV-1a digest of ip:userAgent:language
func deriveID(ip, userAgent, language string) string {
	h := fnv.New64a()

	// hash writes cannot fail
	h.Write([]byte(ip))        //nolint:errcheck,gosec
	h.Write([]byte{':'})       //nolint:errcheck,gosec
	h.Write([]byte(userAgent)) //nolint:errcheck,gosec
	h.Write([]byte{':'})       //nolint:errcheck,gosec
	h.Write([]byte(language))  //nolint:errcheck,gosec

	return fmt.Sprintf("%016x", h.Sum64())
}
