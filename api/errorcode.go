package api

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/bitmark-inc/innercore-api/utils"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",
		1004: "session expired",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: "this email has been registered",
		1102: "invalid email or password",
		1103: "invalid email",
		1104: "missing password",
		1105: "password is too weak",
		1106: "password confirmation does not match",

		1200: "the current journey state does not allow this action",

		1300: "assessment has been submitted",
		1301: "assessment is required",
		1302: "profile not found",

		1400: "invalid clock time",
		1401: "invalid date",
		1402: "unknown timezone",
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)
	errorSessionExpired             = errorJSON(1004)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAccountTaken       = errorJSON(1100)
	errorInvalidCredential  = errorJSON(1102)
	errorInvalidEmail       = errorJSON(1103)
	errorMissingPassword    = errorJSON(1104)
	errorWeakPassword       = errorJSON(1105)
	errorPasswordMismatch   = errorJSON(1106)
	errorJourneyState       = errorJSON(1200)
	errorAssessmentExists   = errorJSON(1300)
	errorAssessmentRequired = errorJSON(1301)
	errorProfileNotFound    = errorJSON(1302)

	errorInvalidClock    = errorJSON(1400)
	errorInvalidDate     = errorJSON(1401)
	errorInvalidTimezone = errorJSON(1402)
)

// ErrorResponse is the body of every failed request. State and Next are
// set when the journey decides where the client goes instead.
type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
	State   string `json:"state,omitempty"`
	Next    string `json:"next,omitempty"`
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

// localize replaces the message with its translation. The default message
// is kept when no translation exists.
func (e ErrorResponse) localize(loc *i18n.Localizer) ErrorResponse {
	id := fmt.Sprintf("error.%d", e.Code)
	if msg := utils.Translate(loc, id, nil); msg != id {
		e.Message = msg
	}
	return e
}
