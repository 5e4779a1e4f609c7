package main

import (
	"github.com/MihaiM21/47Gear-sub000/api/rest/reviews"
	"github.com/MihaiM21/47Gear-sub000/internal/blocklist"
	"github.com/MihaiM21/47Gear-sub000/internal/botcheck"
	"github.com/MihaiM21/47Gear-sub000/internal/config"
	"github.com/MihaiM21/47Gear-sub000/internal/patterns"
	"github.com/MihaiM21/47Gear-sub000/internal/ratelimit"
	"github.com/MihaiM21/47Gear-sub000/internal/shield"
	"github.com/gin-gonic/gin"
)

// holds all dependencies and state for the API server
type Server struct {
	config      *config.Config
	router      *gin.Engine
	shield      *shield.Shield
	limiter     *ratelimit.Limiter
	tracker     *patterns.Tracker
	blockStore  blocklist.Store
	timing      *botcheck.TimingTokenManager
	reviewStore *reviews.Store
}
