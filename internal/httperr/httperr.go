package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// StatusFor maps a business kind to its HTTP status.
func StatusFor(kind Kind) int {
	switch kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusForbidden
	default:
		return http.StatusBadRequest
	}
}

// Respond writes err as a business response when it carries a code, and as
// a 500 with fallbackCode otherwise.
func Respond(c *gin.Context, err error, fallbackCode string) {
	if be, ok := AsBusiness(err); ok {
		status := StatusFor(be.Kind)
		if s, ok := statusOverrides[be.Code]; ok {
			status = s
		}
		Write(c, status, be.Code, messages[be.Code])
		return
	}

	log.Error().Err(err).Str("path", c.FullPath()).Msg(fallbackCode)
	Internal(c, fallbackCode, "Internal error.")
}

// Codes whose status differs from their kind's default.
var statusOverrides = map[string]int{
	"invalid_credentials": http.StatusUnauthorized,
}

var messages = map[string]string{
	"service_not_found":             "Service not found.",
	"slot_not_available":            "Time slot is not available.",
	"booking_in_progress":           "Another booking for this day is in progress, try again.",
	"appointment_not_found":         "Appointment not found.",
	"appointment_already_cancelled": "Appointment is already cancelled.",
	"unauthorized_cancellation":     "You cannot cancel this appointment.",
	"forbidden":                     "Only professionals can do this.",
	"invalid_time_range":            "Start time must be before end time.",
	"invalid_service_duration":      "Service duration must be positive.",
	"email_already_in_use":          "Email already in use.",
	"invalid_email":                 "Invalid email.",
	"invalid_email_domain":          "Email domain does not look valid.",
	"weak_password":                 "Password must have at least 8 characters, letters and digits.",
	"invalid_credentials":           "Invalid credentials.",
	"user_not_found":                "User not found.",
}
