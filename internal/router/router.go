package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/medisuite/hospital-services/internal/middleware"
	"github.com/medisuite/hospital-services/pkg/metrics"
)

// Handler registers routes on a router group.
type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type Config struct {
	RateLimit *middleware.RateLimiterConfig
	CORS      middleware.CORSConfig
}

type Router struct {
	engine *gin.Engine
}

// New wires the shared middleware chain and mounts every handler at the
// root group. RateLimit is optional; nil disables throttling.
func New(cfg Config, m *metrics.Metrics, handlers ...Handler) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestID())
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger())
	engine.Use(middleware.ErrorHandler())
	engine.Use(middleware.CORS(cfg.CORS))
	if cfg.RateLimit != nil {
		engine.Use(middleware.NewRateLimiter(*cfg.RateLimit).RateLimit())
	}
	if m != nil {
		engine.Use(middleware.Metrics(m))
		engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(
			m.Registry(), promhttp.HandlerOpts{},
		)))
	}

	root := engine.Group("/")
	for _, h := range handlers {
		h.RegisterRoutes(root)
	}

	return &Router{engine: engine}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
