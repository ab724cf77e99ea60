package server

import (
	"github.com/abduss/clipcatalog/internal/logger"
	"github.com/abduss/clipcatalog/internal/metrics"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Dependencies groups what the ops router needs.
type Dependencies struct {
	MetricsPath string
	Metrics     *metrics.Recorder
	Log         *zap.Logger
	Checks      []Check
}

// NewRouter builds the ops Gin engine exposing health and metrics routes.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.Middleware(deps.Log))
	if deps.Metrics != nil {
		router.Use(deps.Metrics.Middleware())
	}

	registerHealthRoutes(router, deps.Checks)
	if deps.Metrics != nil {
		path := deps.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		metrics.Register(router, path, deps.Metrics.Registry())
	}

	return router
}
