package middleware

import (
	"fmt"
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		line := fmt.Sprintf("%s %s %d %s", c.Request.Method, path, status, time.Since(start).Round(time.Microsecond))
		switch {
		case status >= 500:
			log.Error(line)
		case status >= 400:
			log.Warn(line)
		default:
			log.Info(line)
		}
	}
}
