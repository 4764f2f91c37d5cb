package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"lifespan-backend/internal/shared/metrics"
	"lifespan-backend/internal/shared/telemetry"
)

// Context keys handlers set for request logging.
const (
	CalculationIDKey = "calculationId"
	HealthScoreKey   = "healthScore"
)

// Logging emits a structured log per request and counts it.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		metrics.IncHTTPRequest(c.Request.Method, c.FullPath(), strconv.Itoa(status))

		userID, _ := c.Get(userIDKey)
		isGuest, _ := c.Get(isGuestKey)
		calculationID, _ := c.Get(CalculationIDKey)
		healthScore, _ := c.Get(HealthScoreKey)

		telemetry.Info("request.complete", map[string]any{
			"request_id":     RequestIDFromContext(c),
			"method":         c.Request.Method,
			"path":           c.Request.URL.Path,
			"status":         status,
			"duration_ms":    float64(latency.Microseconds()) / 1000.0,
			"user_id":        userID,
			"calculation_id": calculationID,
			"health_score":   healthScore,
			"is_guest":       isGuest,
			"client_ip":      c.ClientIP(),
			"user_agent":     c.Request.UserAgent(),
		})
	}
}
