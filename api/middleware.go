package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/bitmark-inc/locationboard/mapview"
	"github.com/bitmark-inc/locationboard/utils"
)

// localizerMiddleware attaches a "localizer" key in gin's context. The
// `lang` query parameter takes precedence over the Accept-Language header.
func (s *Server) localizerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("localizer", utils.NewLocalizer(c.Query("lang"), c.GetHeader("Accept-Language")))
		c.Next()
	}
}

func localizer(c *gin.Context) *i18n.Localizer {
	if l, ok := c.Get("localizer"); ok {
		if loc, ok := l.(*i18n.Localizer); ok {
			return loc
		}
	}
	return utils.NewLocalizer()
}

// recognizeSessionMiddleware is a middleware to make sure the map session
// of the request is mounted. It attaches a "session" key in gin's context.
func (s *Server) recognizeSessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		handle, ok := s.sessions.Get(c.Param("sessionID"))
		if !ok {
			abortWithEncoding(c, http.StatusNotFound, errorSessionNotFound)
			return
		}

		c.Set("session", handle)
		c.Next()
	}
}

func session(c *gin.Context) (*mapview.Handle, bool) {
	h, ok := c.MustGet("session").(*mapview.Handle)
	return h, ok
}
