// Package v1 provides HTTP API version 1.
package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzhttp"

	"scadaadmin/internal/infrastructure/http/v1/handlers"
	"scadaadmin/internal/infrastructure/http/v1/middleware"
	"scadaadmin/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Logger for request logging
	Logger *logger.Logger

	// ColumnBuilder creates grid schemas
	ColumnBuilder handlers.ColumnBuilder

	// ConfigLoader reloads the configuration database (nil without a database)
	ConfigLoader handlers.ConfigLoader

	// DB is pinged by the readiness probe (nil without a database)
	DB handlers.Pinger

	// Stats reports configuration table sizes
	Stats handlers.StatsProvider
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Recovery wraps everything; ErrorHandler sits closest to the handlers.
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	healthHandler := handlers.NewHealthHandler(cfg.DB, cfg.Stats)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
	}

	v1 := router.Group("/api/v1")
	{
		registerMetaRoutes(v1, cfg)
	}

	return router
}

func registerMetaRoutes(group *gin.RouterGroup, cfg RouterConfig) {
	h := handlers.NewMetadataHandler(handlers.NewBaseHandler(), cfg.ColumnBuilder, cfg.ConfigLoader)

	meta := group.Group("/meta")
	{
		meta.GET("/types", h.ListTypes)
		meta.GET("/columns/:entityType", h.GetColumns)
		meta.POST("/reload", h.Reload)
	}
}

// gzipMinSize is lower than the gzhttp default so that single-table schemas compress too.
const gzipMinSize = 256

// NewHandler wraps the router with gzip response compression.
func NewHandler(cfg RouterConfig) (http.Handler, error) {
	wrap, err := gzhttp.NewWrapper(gzhttp.MinSize(gzipMinSize))
	if err != nil {
		return nil, fmt.Errorf("gzip wrapper: %w", err)
	}
	return wrap(NewRouter(cfg)), nil
}
