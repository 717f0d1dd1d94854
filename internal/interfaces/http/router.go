// Package http wires the gin engine, middleware chain, and route table of
// the dashboard API.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reachlab/geodash/internal/application/dashboard"
	"github.com/reachlab/geodash/internal/infrastructure/monitoring/logging"
	"github.com/reachlab/geodash/internal/infrastructure/monitoring/prometheus"
	"github.com/reachlab/geodash/internal/interfaces/http/handlers"
	"github.com/reachlab/geodash/internal/interfaces/http/middleware"
)

// RouterDeps carries everything the router needs. Metrics and
// MetricsHandler are optional.
type RouterDeps struct {
	Service        *dashboard.Service
	Logger         logging.Logger
	Metrics        *prometheus.AppMetrics
	MetricsHandler http.Handler
	Mode           string
	CORS           *middleware.CORSConfig
}

// NewRouter builds the engine with the full middleware chain and route
// table.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Mode != "" {
		gin.SetMode(deps.Mode)
	}

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.Recovery(deps.Logger),
		middleware.RequestLogging(deps.Logger, middleware.DefaultLoggingConfig()),
	)
	if deps.Metrics != nil {
		engine.Use(middleware.Metrics(deps.Metrics))
	}
	cors := middleware.DefaultCORSConfig()
	if deps.CORS != nil {
		cors = *deps.CORS
	}
	engine.Use(middleware.CORS(cors))

	health := handlers.NewHealthHandler(deps.Service)
	engine.GET("/healthz", health.Healthz)
	engine.GET("/readyz", health.Readyz)

	if deps.MetricsHandler != nil {
		engine.GET("/metrics", gin.WrapH(deps.MetricsHandler))
	}

	dash := handlers.NewDashboardHandler(deps.Service)
	v1 := engine.Group("/api/v1")
	{
		v1.GET("/snapshot", dash.GetSnapshot)
		v1.GET("/vendors", dash.ListVendors)
		v1.GET("/areas/:code", dash.GetArea)
		v1.GET("/areas/:code/style", dash.GetAreaStyle)
		v1.GET("/styles", dash.ListStyles)
		v1.GET("/legend", dash.GetLegend)
		v1.GET("/stores", dash.ListStores)
		v1.GET("/boundaries", dash.GetBoundaries)
		v1.POST("/refresh", dash.Refresh)
	}

	return engine
}
