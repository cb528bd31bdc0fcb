package api

import (
	"errors"

	"github.com/bitmark-inc/locationboard/external/unidb"
	"github.com/bitmark-inc/locationboard/mapview"
)

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1200: "failed to fetch data from the source",
		1201: "malformed response from the source",

		1300: "map session not found",
		1301: mapview.ErrStaleSelection.Error(),
	}

	errorInternalServer = errorJSON(999)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorSourceUnavailable = errorJSON(1200)
	errorSourceMalformed   = errorJSON(1201)

	errorSessionNotFound = errorJSON(1300)
	errorStaleSelection  = errorJSON(1301)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// WithDetail attaches a user facing message to the error
func (e ErrorResponse) WithDetail(detail string) ErrorResponse {
	e.Detail = detail
	return e
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// sourceErrorJSON picks the error object of a failed source request
func sourceErrorJSON(err error) ErrorResponse {
	var parseErr *unidb.ParseError
	if errors.As(err, &parseErr) {
		return errorSourceMalformed
	}
	return errorSourceUnavailable
}
