package config

// holds all runtime configuration for the storefront protection service
type Config struct {
	// "development" or "production"; development disables heuristic blocking
	Environment string

	// HTTP listen port
	Port string

	// secret used to sign form timing tokens
	TimingTokenSecret string

	// optional; when set the blocklist is shared across instances via Redis
	RedisURL string

	// third-party CDN allowed by the Content-Security-Policy
	CDNHost string

	// master switch for the abuse-mitigation middleware
	ShieldEnabled bool

	// origins allowed by CORS (the storefront frontend)
	AllowedOrigins []string
}

// reports whether heuristic blocking should be bypassed entirely
func (c *Config) IsDevelopment() bool {
	return c.Environment != "production"
}
