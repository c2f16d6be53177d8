package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"equipment-status-backend/config"
	"equipment-status-backend/internal/inventory"
	"equipment-status-backend/internal/mw"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(inv *inventory.Inventory, cfg config.ServerConfig, now func() time.Time, log *zap.Logger) *gin.Engine {
	r := gin.New()
	if cfg.RequestIPHeader != "" {
		// Rate limiting and dedupe key on the client address set by the proxy.
		r.TrustedPlatform = cfg.RequestIPHeader
	}
	r.Use(gin.Recovery(), mw.RequestLogger(log))

	handler := NewHandler(inv, now, log)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst, log)

	// Submissions are remembered for the dedupe window, swept twice as often.
	submissions := cache.New(cfg.DedupeWindow, cfg.DedupeWindow/2)
	dedupe := mw.Dedupe(submissions, cfg.DedupeWindow, log)

	r.GET("/healthz", handler.Health)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.GET("/options", handler.GetOptions)

		api.GET("/equipment", handler.ListEquipment)
		api.GET("/equipment/:number", handler.GetEquipment)
		api.POST("/equipment", dedupe, handler.RegisterEquipment)
		api.PUT("/equipment/:number/status", dedupe, handler.PutStatus)

		api.GET("/maintenance", handler.ListMaintenance)
		api.POST("/maintenance", dedupe, handler.RecordMaintenance)

		api.GET("/damage", handler.ListDamage)
		api.POST("/damage", dedupe, handler.RecordDamage)

		api.GET("/dashboard/status", handler.GetStatusSummary)
		api.GET("/dashboard/events", handler.GetEventCounts)

		api.GET("/export", handler.Export)
	}

	return r
}
