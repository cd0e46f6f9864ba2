package appointment

import (
	"context"
	"fmt"
	"time"

	domain "github.com/BruksfildServices01/appointment-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-booking/internal/metrics"
	"github.com/BruksfildServices01/appointment-booking/internal/timezone"
)

type ViewAvailableSlots struct {
	availabilityRepo domain.AvailabilityRepository
	appointmentRepo  domain.AppointmentRepository
	metrics          *metrics.Metrics
}

func NewViewAvailableSlots(
	availabilityRepo domain.AvailabilityRepository,
	appointmentRepo domain.AppointmentRepository,
	m *metrics.Metrics,
) *ViewAvailableSlots {
	return &ViewAvailableSlots{
		availabilityRepo: availabilityRepo,
		appointmentRepo:  appointmentRepo,
		metrics:          m,
	}
}

func (uc *ViewAvailableSlots) Execute(
	ctx context.Context,
	in domain.SlotsInput,
) ([]domain.TimeSlot, error) {

	defer uc.metrics.Track("view_available_slots")()

	if in.ServiceDuration <= 0 {
		return nil, domain.ErrInvalidServiceDuration
	}

	dayStart, dayEnd := timezone.DayRange(in.Date)

	windows, appointments, err := fetchWindowAndAppointments(
		ctx,
		uc.availabilityRepo,
		uc.appointmentRepo,
		dayStart,
		dayEnd,
	)
	if err != nil {
		return nil, fmt.Errorf("load day %s: %w", timezone.DayKey(dayStart), err)
	}

	slots := domain.ComputeSlots(
		windows,
		appointments,
		time.Duration(in.ServiceDuration)*time.Minute,
	)

	uc.metrics.ObserveSlots(len(slots))
	return slots, nil
}
