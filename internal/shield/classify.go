package shield

import (
	"strings"

	"github.com/MihaiM21/47Gear-sub000/internal/ratelimit"
)

// route class decides which checks and which rate-limit tuple apply
type RouteClass int

const (
	// pages and everything not otherwise classified
	ClassPage RouteClass = iota

	// non-public API routes, strictest heuristics
	ClassAPI

	// admin surface; has its own auth gate, exempt from generic limiting
	ClassAdmin

	// read-only public API, exempt from generic limiting
	ClassPublicRead

	// static assets bypass the middleware entirely
	ClassStatic
)

var staticPrefixes = []string{
	"/_next/static",
	"/_next/image",
	"/favicon.ico",
}

var staticSuffixes = []string{
	".png", ".jpg", ".jpeg", ".gif", ".webp", ".svg", ".ico",
	".css", ".js", ".map", ".woff", ".woff2",
}

var publicReadPrefixes = []string{
	"/api/product-stories",
	"/api/reviews/featured",
}

var adminPrefixes = []string{
	"/api/admin",
	"/management-portal",
}

// classifies a request path by prefix
func ClassifyRoute(path string) RouteClass {
	for _, prefix := range staticPrefixes {
		if strings.HasPrefix(path, prefix) {
			return ClassStatic
		}
	}

	for _, suffix := range staticSuffixes {
		if strings.HasSuffix(path, suffix) {
			return ClassStatic
		}
	}

	for _, prefix := range adminPrefixes {
		if strings.HasPrefix(path, prefix) {
			return ClassAdmin
		}
	}

	for _, prefix := range publicReadPrefixes {
		if strings.HasPrefix(path, prefix) {
			return ClassPublicRead
		}
	}

	if strings.HasPrefix(path, "/api/") {
		return ClassAPI
	}

	return ClassPage
}

// returns the rate-limit tuple for a route class
func (rc RouteClass) Policy() ratelimit.Policy {
	switch rc {
	case ClassAdmin:
		return ratelimit.AdminRoutes
	default:
		return ratelimit.GeneralAPI
	}
}

// reports whether the generic rate limiter applies to this class
func (rc RouteClass) RateLimited() bool {
	return rc != ClassAdmin && rc != ClassPublicRead && rc != ClassStatic
}
