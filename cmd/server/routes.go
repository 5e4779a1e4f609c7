package main

import (
	"time"

	"github.com/MihaiM21/47Gear-sub000/api/rest/admin"
	"github.com/MihaiM21/47Gear-sub000/api/rest/contact"
	"github.com/MihaiM21/47Gear-sub000/api/rest/health"
	"github.com/MihaiM21/47Gear-sub000/api/rest/reviews"
	"github.com/MihaiM21/47Gear-sub000/api/rest/stories"
	"github.com/MihaiM21/47Gear-sub000/api/rest/token"
	"github.com/MihaiM21/47Gear-sub000/internal/shield"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// sets up all API routes and middleware; the shield middleware runs
// before every handler so no route skips header hardening
func RegisterRoutes(router *gin.Engine, server *Server) {
	corsConfig := cors.DefaultConfig()
	if len(server.config.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = server.config.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	corsConfig.MaxAge = 12 * time.Hour

	router.Use(cors.New(corsConfig))
	router.Use(shield.RequestID())
	router.Use(server.shield.Middleware())

	router.GET("/health", health.Handler)

	api := router.Group("/api")

	{
		api.GET("/ping", health.PingHandler)
		api.GET("/form-token", token.IssueHandler(server.timing))

		contact.RegisterRoutes(api, server.timing, server.limiter)
		reviews.RegisterRoutes(api, server.reviewStore, server.timing, server.limiter)
		stories.RegisterRoutes(api)
		admin.RegisterRoutes(api, server.reviewStore, server.shield)
	}
}
