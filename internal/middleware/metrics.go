package middleware

import (
	"strconv"
	"time"

	"github.com/bizgrid/erp_backend/internal/platform/observability"
	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request counts and latencies for Prometheus.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			// Unmatched routes (404s) are grouped to keep label cardinality bounded
			route = "unmatched"
		}

		observability.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		observability.HTTPRequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}
