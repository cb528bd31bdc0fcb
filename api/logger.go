package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Ginrus logs every request of a route group through logrus
func Ginrus(name string) gin.HandlerFunc {
	logger := logrus.WithField("prefix", name)

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		entry := logger.WithFields(logrus.Fields{
			"status":  c.Writer.Status(),
			"method":  c.Request.Method,
			"path":    path,
			"ip":      c.ClientIP(),
			"latency": time.Since(start),
		})

		if len(c.Errors) > 0 {
			entry.Error(c.Errors.ByType(gin.ErrorTypeAny).String())
			return
		}

		if c.Writer.Status() >= 500 {
			entry.Warn("request failed")
		} else {
			entry.Info("request served")
		}
	}
}
