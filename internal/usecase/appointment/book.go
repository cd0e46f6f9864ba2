package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/BruksfildServices01/appointment-booking/internal/audit"
	domain "github.com/BruksfildServices01/appointment-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-booking/internal/metrics"
	"github.com/BruksfildServices01/appointment-booking/internal/models"
	"github.com/BruksfildServices01/appointment-booking/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	ClientID  string
	ServiceID string
	StartTime time.Time
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	appointmentRepo  domain.AppointmentRepository
	availabilityRepo domain.AvailabilityRepository
	serviceRepo      domain.ServiceRepository
	locker           domain.Locker
	audit            *audit.Dispatcher
	metrics          *metrics.Metrics
	newID            IDFunc
}

type BookOption func(*BookAppointment)

// WithLocker serializes bookings per calendar day through l.
func WithLocker(l domain.Locker) BookOption {
	return func(uc *BookAppointment) { uc.locker = l }
}

func WithBookingIDs(f IDFunc) BookOption {
	return func(uc *BookAppointment) { uc.newID = f }
}

func NewBookAppointment(
	appointmentRepo domain.AppointmentRepository,
	availabilityRepo domain.AvailabilityRepository,
	serviceRepo domain.ServiceRepository,
	audit *audit.Dispatcher,
	m *metrics.Metrics,
	opts ...BookOption,
) *BookAppointment {
	uc := &BookAppointment{
		appointmentRepo:  appointmentRepo,
		availabilityRepo: availabilityRepo,
		serviceRepo:      serviceRepo,
		audit:            audit,
		metrics:          m,
		newID:            defaultID,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (ap *models.Appointment, err error) {

	defer uc.metrics.Track("book_appointment")()
	defer func() { uc.metrics.ObserveBooking(outcome(err)) }()

	// --------------------------------------------------
	// 1️⃣ Service
	// --------------------------------------------------
	service, err := uc.serviceRepo.FindServiceByID(ctx, in.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("find service: %w", err)
	}
	if service == nil {
		return nil, domain.ErrServiceNotFound
	}

	start := in.StartTime.In(timezone.Canonical)
	end := domain.EndTime(start, service.DurationMin)

	// --------------------------------------------------
	// 2️⃣ Advisory lock (optional)
	// --------------------------------------------------
	if uc.locker != nil {
		release, ok, err := uc.locker.Acquire(ctx, "booking:"+timezone.DayKey(start))
		if err != nil {
			return nil, fmt.Errorf("acquire booking lock: %w", err)
		}
		if !ok {
			return nil, domain.ErrBookingInProgress
		}
		defer release()
	}

	// --------------------------------------------------
	// 3️⃣ Snapshot of windows + appointments
	// --------------------------------------------------
	windows, appointments, err := fetchWindowAndAppointments(
		ctx,
		uc.availabilityRepo,
		uc.appointmentRepo,
		start,
		end,
	)
	if err != nil {
		return nil, fmt.Errorf("load booking snapshot: %w", err)
	}

	// --------------------------------------------------
	// 4️⃣ Containment
	// --------------------------------------------------
	if !domain.FitsInAnyWindow(start, end, windows) {
		return nil, domain.ErrSlotNotAvailable
	}

	// --------------------------------------------------
	// 5️⃣ Conflicts (cancelled never blocks)
	// --------------------------------------------------
	if domain.ConflictsWith(start, end, appointments) {
		return nil, domain.ErrSlotNotAvailable
	}

	// --------------------------------------------------
	// 6️⃣ Commit
	// --------------------------------------------------
	ap = &models.Appointment{
		ID:        uc.newID(),
		ClientID:  in.ClientID,
		ServiceID: service.ID,
		StartTime: start,
		EndTime:   end,
		Status:    string(domain.InitialStatus()),
	}

	if err := uc.appointmentRepo.SaveAppointment(ctx, ap); err != nil {
		return nil, fmt.Errorf("save appointment: %w", err)
	}

	clientID := in.ClientID
	uc.audit.Dispatch(audit.Event{
		ActorID:  &clientID,
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]any{
			"service_id": service.ID,
			"start":      start,
			"end":        end,
		},
	})

	return ap, nil
}
