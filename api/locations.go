package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/locationboard/mapview"
	"github.com/bitmark-inc/locationboard/schema"
	"github.com/bitmark-inc/locationboard/store"
	"github.com/bitmark-inc/locationboard/utils"
)

// selectionParams narrows the locations of an email to one day. Both
// fields are optional.
type selectionParams struct {
	Date     string `form:"date" json:"date"`
	Timezone string `form:"tz" json:"tz"`
}

// selection is the locations of an email after the day filter
type selection struct {
	email   string
	total   int
	records []schema.LocationRecord
	day     time.Time
	loc     *time.Location
}

// resolve returns the selected day and the time zone of the params
func (s *Server) resolve(params selectionParams) (time.Time, *time.Location, error) {
	loc := s.defaultLocation
	if params.Timezone != "" {
		loc = utils.GetLocation(params.Timezone)
		if loc == nil {
			return time.Time{}, nil, fmt.Errorf("unknown time zone: %q", params.Timezone)
		}
	}

	if params.Date == "" {
		return time.Time{}, loc, nil
	}

	day, err := time.ParseInLocation(queryDateLayout, params.Date, loc)
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("invalid date: %w", err)
	}
	return day, loc, nil
}

// loadSelection fetches the locations of the email and applies the day
// filter. It aborts the request and returns false on any failure.
func (s *Server) loadSelection(c *gin.Context, email string, params selectionParams) (*selection, bool) {
	logger := log.WithField("api", "loadSelection")

	email = strings.TrimSpace(email)
	if email == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, store.ErrEmptyEmail)
		return nil, false
	}

	day, loc, err := s.resolve(params)
	if err != nil {
		logger.WithError(err).Error(errorInvalidParameters.Message)
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return nil, false
	}

	records, err := s.store.ListLocationsForEmail(c.Request.Context(), email)
	if err != nil {
		logger.WithError(err).WithField("email", email).Error("list locations")
		sentry.CaptureException(err)
		detail := utils.Localize(localizer(c), utils.MsgLoadLocationsFailed, map[string]interface{}{
			"Email": email,
		})
		abortWithEncoding(c, http.StatusBadGateway, sourceErrorJSON(err).WithDetail(detail), err)
		return nil, false
	}

	return &selection{
		email:   email,
		total:   len(records),
		records: store.FilterByDay(records, day, loc),
		day:     day,
		loc:     loc,
	}, true
}

// listEmails is the API to list the emails known to the source
func (s *Server) listEmails(c *gin.Context) {
	emails, err := s.store.ListEmails(c.Request.Context())
	if err != nil {
		log.WithField("api", "listEmails").WithError(err).Error("list emails")
		sentry.CaptureException(err)
		detail := utils.Localize(localizer(c), utils.MsgLoadUsersFailed, nil)
		abortWithEncoding(c, http.StatusBadGateway, sourceErrorJSON(err).WithDetail(detail), err)
		return
	}

	summary := ""
	if len(emails) == 0 {
		summary = utils.Localize(localizer(c), utils.MsgNoUsers, nil)
	}

	c.JSON(http.StatusOK, gin.H{
		"emails":  emails,
		"summary": summary,
	})
}

// listUsers is the API to list the user records of the source
func (s *Server) listUsers(c *gin.Context) {
	users, err := s.store.ListUsers(c.Request.Context())
	if err != nil {
		log.WithField("api", "listUsers").WithError(err).Error("list users")
		sentry.CaptureException(err)
		detail := utils.Localize(localizer(c), utils.MsgLoadUsersFailed, nil)
		abortWithEncoding(c, http.StatusBadGateway, sourceErrorJSON(err).WithDetail(detail), err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users": users,
	})
}

// listLocations is the API to query the locations of an email
func (s *Server) listLocations(c *gin.Context) {
	var params selectionParams
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	sel, ok := s.loadSelection(c, c.Param("email"), params)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email":     sel.email,
		"total":     sel.total,
		"locations": locationEntries(sel.records, sel.loc),
		"view":      mapview.Compute(sel.records),
		"summary":   locationSummary(localizer(c), sel.total, len(sel.records), sel.day),
	})
}
