package main

import (
	"github.com/MihaiM21/47Gear-sub000/api/rest/reviews"
	"github.com/MihaiM21/47Gear-sub000/internal/blocklist"
	"github.com/MihaiM21/47Gear-sub000/internal/botcheck"
	"github.com/MihaiM21/47Gear-sub000/internal/config"
	"github.com/MihaiM21/47Gear-sub000/internal/logger"
	"github.com/MihaiM21/47Gear-sub000/internal/patterns"
	"github.com/MihaiM21/47Gear-sub000/internal/ratelimit"
	"github.com/MihaiM21/47Gear-sub000/internal/shield"
	"github.com/gin-gonic/gin"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// blocklist: per-process memory by default, Redis when configured
	// so blocks are shared across instances
	var blockStore blocklist.Store
	if cfg.RedisURL != "" {
		redisStore, err := blocklist.NewRedisStore(cfg.RedisURL)
		if err != nil {
			// the heuristics still work per-instance; fall back rather
			// than refuse to start
			logger.ErrorErr(err, "redis blocklist unavailable, falling back to in-memory store")
			blockStore = blocklist.NewMemoryStore()
		} else {
			blockStore = redisStore
		}
	} else {
		blockStore = blocklist.NewMemoryStore()
	}

	limiter := ratelimit.NewLimiter()
	tracker := patterns.NewTracker()
	timing := botcheck.NewTimingTokenManager(cfg.TimingTokenSecret)

	protection := shield.New(cfg, limiter, tracker, blockStore)

	logger.Info("abuse mitigation initialized",
		"enabled", cfg.ShieldEnabled,
		"environment", cfg.Environment,
		"shared_blocklist", cfg.RedisURL != "",
	)

	router := gin.Default()

	server := &Server{
		config:      cfg,
		router:      router,
		shield:      protection,
		limiter:     limiter,
		tracker:     tracker,
		blockStore:  blockStore,
		timing:      timing,
		reviewStore: reviews.NewStore(),
	}

	RegisterRoutes(router, server)

	return server, nil
}

// stops background sweeps and closes external connections
func (s *Server) Shutdown() {
	s.limiter.Close()
	s.tracker.Close()

	if closer, ok := s.blockStore.(*blocklist.RedisStore); ok {
		closer.Close() //nolint:errcheck,gosec // best-effort cleanup on shutdown
	}
}
