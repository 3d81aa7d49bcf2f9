package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nurpe/apper-api/internal/metrics"
)

// Metrics labels requests by route template so path parameters do not
// explode the series count.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.RequestStarted()
		c.Next()
		m.RequestFinished(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
