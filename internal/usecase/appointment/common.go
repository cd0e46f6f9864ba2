package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	domain "github.com/BruksfildServices01/appointment-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-booking/internal/httperr"
	"github.com/BruksfildServices01/appointment-booking/internal/models"
)

// IDFunc generates identifiers for new entities.
type IDFunc func() string

func defaultID() string {
	return uuid.NewString()
}

// fetchWindowAndAppointments issues both overlap reads concurrently and
// returns once both have completed.
func fetchWindowAndAppointments(
	ctx context.Context,
	availabilityRepo domain.AvailabilityRepository,
	appointmentRepo domain.AppointmentRepository,
	from time.Time,
	to time.Time,
) ([]models.Availability, []models.Appointment, error) {

	var (
		windows      []models.Availability
		appointments []models.Appointment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		windows, err = availabilityRepo.FindAvailabilityOverlapping(gctx, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		appointments, err = appointmentRepo.FindAppointmentsOverlapping(gctx, from, to)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return windows, appointments, nil
}

func outcome(err error) string {
	if err == nil {
		return "committed"
	}
	if be, ok := httperr.AsBusiness(err); ok {
		return be.Code
	}
	return "error"
}
