package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"skymate/obs"
)

// MetricsMiddleware records request counts and latencies per route. The route
// template (not the raw path) is used as the label to keep cardinality low.
func MetricsMiddleware(m *obs.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
		m.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())
	}
}
