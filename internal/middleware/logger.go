package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ZapLogger logs every request with method, path, status and latency.
// Health and swagger probes go to debug to keep the info stream readable.
func ZapLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		dur := time.Since(start)

		path := c.Request.URL.Path
		fields := []interface{}{
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", dur.String(),
			"clientIP", c.ClientIP(),
		}
		if path == "/health" || strings.HasPrefix(path, "/swagger") {
			log.Sugar().Debugw("HTTP", fields...)
		} else {
			log.Sugar().Infow("HTTP", fields...)
		}
	}
}
