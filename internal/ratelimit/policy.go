package ratelimit

import "time"

// rate-limit tuple for one endpoint class
type Policy struct {
	MaxRequests int
	Window      time.Duration
	BurstLimit  int
	BurstWindow time.Duration
}

// per-endpoint-class policy table; weights are policy, not law
var (
	// contact form submissions
	ContactForm = Policy{
		MaxRequests: 3,
		Window:      time.Hour,
		BurstLimit:  2,
		BurstWindow: 5 * time.Minute,
	}

	// review submissions
	ReviewSubmission = Policy{
		MaxRequests: 5,
		Window:      time.Hour,
		BurstLimit:  2,
		BurstWindow: 5 * time.Minute,
	}

	// general API traffic
	GeneralAPI = Policy{
		MaxRequests: 100,
		Window:      time.Minute,
		BurstLimit:  30,
		BurstWindow: 10 * time.Second,
	}

	// admin routes (behind their own auth gate)
	AdminRoutes = Policy{
		MaxRequests: 200,
		Window:      time.Minute,
		BurstLimit:  50,
		BurstWindow: 10 * time.Second,
	}
)
