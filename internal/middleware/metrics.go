package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/tickercast/internal/metrics"
)

// Metrics records request count and latency per route template. Unmatched
// paths share the "unmatched" route label to keep cardinality bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveHTTP(route, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
