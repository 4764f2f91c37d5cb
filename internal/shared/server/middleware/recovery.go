package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"lifespan-backend/internal/shared/server/respond"
	"lifespan-backend/internal/shared/telemetry"
)

// Recovery turns a handler panic into a 500 error body and a logged stack.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			calculationID, _ := c.Get(CalculationIDKey)
			telemetry.Error("http.panic", map[string]any{
				"request_id":     RequestIDFromContext(c),
				"calculation_id": calculationID,
				"err":            fmt.Errorf("panic: %v", rec),
				"stack":          string(debug.Stack()),
				"route":          c.FullPath(),
				"method":         c.Request.Method,
			})
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Unexpected server error", nil)
		}()
		c.Next()
	}
}
