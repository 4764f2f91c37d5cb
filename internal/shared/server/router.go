package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lifespan-backend/internal/calculations"
	"lifespan-backend/internal/lifespan"
	"lifespan-backend/internal/services/health"
	"lifespan-backend/internal/shared/config"
	"lifespan-backend/internal/shared/metrics"
	"lifespan-backend/internal/shared/server/middleware"
	"lifespan-backend/internal/shared/server/respond"
)

// RouterDeps contains handlers and config used to build the router.
type RouterDeps struct {
	Config              config.Config
	Health              *health.Service
	LifespanHandler     *lifespan.Handler
	CalculationsHandler *calculations.Handler
	Limiter             *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	respond.UseJSONFieldNames()
	r := gin.New()

	cfg := deps.Config
	rule := middleware.RateLimitRule{Rate: cfg.RateLimitRPS, Burst: cfg.RateLimitBurst}
	rules := map[string]middleware.RateLimitRule{}
	if rule.Rate > 0 && rule.Burst > 0 {
		rules[middleware.RateLimitGroupCalculate] = rule
	}

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.Use(
		middleware.Auth(cfg.Env),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules:    rules,
			GroupFor: middleware.CalculationGroup,
			Limiter:  deps.Limiter,
		}),
	)

	healthSvc := deps.Health
	api.GET("/health", func(c *gin.Context) {
		status := healthSvc.Status(c.Request.Context())
		code := http.StatusOK
		if !status.OK {
			code = http.StatusServiceUnavailable
		}
		respond.JSON(c, code, status)
	})
	registerMeRoutes(api)
	if deps.LifespanHandler != nil {
		deps.LifespanHandler.RegisterRoutes(api)
	}
	if deps.CalculationsHandler != nil {
		deps.CalculationsHandler.RegisterRoutes(api)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
