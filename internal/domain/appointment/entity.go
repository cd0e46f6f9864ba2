package appointment

import (
	"github.com/BruksfildServices01/appointment-booking/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	return nil
}

// CanBeCancelledBy applies the ownership rule. A nil actor is the
// privileged sentinel and is always allowed.
func CanBeCancelledBy(ap *models.Appointment, actorID *string) error {
	if actorID == nil {
		return nil
	}
	if *actorID != ap.ClientID {
		return ErrUnauthorizedCancellation
	}
	return nil
}
