package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "development"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	timingSecret := os.Getenv("TIMING_TOKEN_SECRET")
	if timingSecret == "" {
		if environment == "production" {
			return nil, fmt.Errorf("TIMING_TOKEN_SECRET environment variable is required in production")
		}
		// development fallback so local form testing works out of the box
		timingSecret = "dev-timing-token-secret"
	}

	cdnHost := os.Getenv("CDN_HOST")
	if cdnHost == "" {
		cdnHost = "cdn.shopify.com"
	}

	shieldEnabled := true
	if v := os.Getenv("SHIELD_ENABLED"); v == "false" || v == "0" {
		shieldEnabled = false
	}

	var origins []string
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		for _, origin := range strings.Split(v, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				origins = append(origins, origin)
			}
		}
	}

	return &Config{
		Environment:       environment,
		Port:              port,
		TimingTokenSecret: timingSecret,
		RedisURL:          os.Getenv("REDIS_URL"),
		CDNHost:           cdnHost,
		ShieldEnabled:     shieldEnabled,
		AllowedOrigins:    origins,
	}, nil
}
