package appointment

import (
	"errors"

	"github.com/BruksfildServices01/appointment-booking/internal/httperr"
)

var (
	ErrServiceNotFound             = httperr.ErrNotFound("service_not_found")
	ErrAppointmentNotFound         = httperr.ErrNotFound("appointment_not_found")
	ErrSlotNotAvailable            = httperr.ErrConflict("slot_not_available")
	ErrBookingInProgress           = httperr.ErrConflict("booking_in_progress")
	ErrAppointmentAlreadyCancelled = httperr.ErrConflict("appointment_already_cancelled")
	ErrUnauthorizedCancellation    = httperr.ErrUnauthorized("unauthorized_cancellation")
	ErrForbidden                   = httperr.ErrUnauthorized("forbidden")
	ErrInvalidTimeRange            = httperr.ErrBusiness("invalid_time_range")
	ErrInvalidServiceDuration      = httperr.ErrBusiness("invalid_service_duration")
)

// ErrRecordMissing is returned by UpdateAppointment when the id is unknown.
var ErrRecordMissing = errors.New("record missing")
