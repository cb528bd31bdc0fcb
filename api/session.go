package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/locationboard/mapview"
)

// createSession is the API to mount a map for a dashboard
func (s *Server) createSession(c *gin.Context) {
	h := s.sessions.Create()

	c.JSON(http.StatusOK, gin.H{
		"session_id": h.ID(),
		"view":       h.View(),
	})
}

// sessionDetail is the API to query the markers currently on a map
func (s *Server) sessionDetail(c *gin.Context) {
	h, ok := session(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id": h.ID(),
		"markers":    h.Markers(),
		"view":       h.View(),
	})
}

// selectEmail is the API to show the locations of an email on a map. The
// whole marker set of the map is replaced. A selection overtaken by a later
// one on the same map is answered with a conflict and changes nothing.
func (s *Server) selectEmail(c *gin.Context) {
	logger := log.WithField("api", "selectEmail")

	h, ok := session(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var params struct {
		Email string `json:"email" binding:"required"`
		selectionParams
	}

	if err := c.ShouldBindJSON(&params); err != nil {
		logger.WithError(err).Error(errorCannotParseRequest.Message)
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	token, err := h.Begin()
	if err != nil {
		abortWithApplyError(c, err)
		return
	}

	sel, ok := s.loadSelection(c, params.Email, params.selectionParams)
	if !ok {
		return
	}

	update, err := h.Apply(token, sel.records, sel.loc)
	if err != nil {
		abortWithApplyError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   update.Token,
		"email":   sel.email,
		"total":   sel.total,
		"removed": update.Removed,
		"markers": update.Markers,
		"view":    update.View,
		"summary": locationSummary(localizer(c), sel.total, len(sel.records), sel.day),
	})
}

// abortWithApplyError answers a failed selection of a map
func abortWithApplyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, mapview.ErrStaleSelection):
		abortWithEncoding(c, http.StatusConflict, errorStaleSelection, err)
	case errors.Is(err, mapview.ErrDisposed):
		abortWithEncoding(c, http.StatusNotFound, errorSessionNotFound, err)
	default:
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	}
}

// deleteSession is the API to unmount a map
func (s *Server) deleteSession(c *gin.Context) {
	h, ok := session(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	if !s.sessions.Dispose(h.ID()) {
		abortWithEncoding(c, http.StatusNotFound, errorSessionNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
