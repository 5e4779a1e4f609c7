package botcheck

import (
	"net/http"
	"strings"
)

// requests scoring at or above this confidence are treated as automated
const AutomationConfidenceThreshold = 50

// known bot/crawler/scraper/headless signatures (case-insensitive matching)
var botUserAgentPatterns = []string{
	// generic bot indicators
	"bot",
	"crawler",
	"spider",
	"scraper",
	"fetch",
	"scan",
	// cli tools
	"curl",
	"wget",
	"httpie",
	// programming libraries
	"python-requests",
	"python-urllib",
	"go-http-client",
	"java",
	"ruby",
	"perl",
	"node-fetch",
	"axios",
	"libwww",
	"apache-httpclient",
	"okhttp",
	// headless browsers (when exposed)
	"headless",
	"phantomjs",
	"selenium",
	"puppeteer",
	"playwright",
	// specific scrapers
	"scrapy",
	"nutch",
	"httrack",
}

// automation frameworks and HTTP clients that never represent a human browser
var automationToolPatterns = []string{
	"curl",
	"wget",
	"python",
	"go-http-client",
	"java/",
	"selenium",
	"puppeteer",
	"playwright",
	"headless",
	"phantomjs",
	"scrapy",
	"httpclient",
	"okhttp",
	"axios",
	"node-fetch",
	"postman",
}

// result of the weighted automation check
type AutomationResult struct {
	IsAutomated bool
	Confidence  int
	Indicators  []string
}

// result of the OR-composed suspicious-pattern check
type PatternResult struct {
	Suspicious bool
	Reasons    []string
}

// reports whether a user-agent string matches known automation signatures;
// an absent user-agent is itself suspicious
func IsSuspiciousUserAgent(userAgent string) bool {
	if userAgent == "" {
		return true
	}

	lower := strings.ToLower(userAgent)

	for _, pattern := range botUserAgentPatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}

	return false
}

// runs independent header-shape checks; any single trigger flags the
// request as suspicious (unlike the weighted scoring elsewhere)
func DetectSuspiciousPatterns(r *http.Request) PatternResult {
	var reasons []string

	userAgent := r.Header.Get("User-Agent")

	if userAgent == "" {
		reasons = append(reasons, "missing user-agent")
	} else if len(userAgent) < 20 {
		reasons = append(reasons, "abnormally short user-agent")
	}

	if userAgent != "" && IsSuspiciousUserAgent(userAgent) {
		reasons = append(reasons, "known bot user-agent")
	}

	if r.Method == http.MethodPost {
		if r.Header.Get("Referer") == "" {
			reasons = append(reasons, "POST without referer")
		}

		accept := r.Header.Get("Accept")
		if !strings.Contains(accept, "text/html") && !strings.Contains(accept, "application/json") {
			reasons = append(reasons, "unusual accept header for POST")
		}

		if r.Header.Get("Origin") == "" && r.Header.Get("Referer") == "" {
			reasons = append(reasons, "POST without origin or referer")
		}
	}

	return PatternResult{
		Suspicious: len(reasons) > 0,
		Reasons:    reasons,
	}
}

// weighted automation-confidence check over user-agent and header evidence
func DetectAutomation(r *http.Request) AutomationResult {
	result := AutomationResult{}

	userAgent := strings.ToLower(r.Header.Get("User-Agent"))

	for _, pattern := range automationToolPatterns {
		if strings.Contains(userAgent, pattern) {
			result.Confidence += 50
			result.Indicators = append(result.Indicators, "automation tool user-agent: "+pattern)
			break
		}
	}

	for _, header := range []string{"Accept", "Accept-Language", "Accept-Encoding"} {
		if r.Header.Get(header) == "" {
			result.Confidence += 15
			result.Indicators = append(result.Indicators, "missing header: "+header)
		}
	}

	// headless browsers advertise themselves through client hints
	if strings.Contains(strings.ToLower(r.Header.Get("Sec-CH-UA")), "headless") {
		result.Confidence += 40
		result.Indicators = append(result.Indicators, "headless client hint")
	}

	if result.Confidence > 100 {
		result.Confidence = 100
	}

	result.IsAutomated = result.Confidence >= AutomationConfidenceThreshold

	return result
}
