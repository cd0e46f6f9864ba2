package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/appointment-booking/internal/models"
)

// Finders return (nil, nil) when the record does not exist.

type ServiceRepository interface {
	FindServiceByID(
		ctx context.Context,
		id string,
	) (*models.Service, error)

	ListServices(
		ctx context.Context,
	) ([]models.Service, error)
}

type AvailabilityRepository interface {
	FindAvailabilityOverlapping(
		ctx context.Context,
		from time.Time,
		to time.Time,
	) ([]models.Availability, error)

	SaveAvailability(
		ctx context.Context,
		av *models.Availability,
	) error
}

type AppointmentRepository interface {
	FindAppointmentsOverlapping(
		ctx context.Context,
		from time.Time,
		to time.Time,
	) ([]models.Appointment, error)

	FindAppointmentByID(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	FindAppointmentsByClient(
		ctx context.Context,
		clientID string,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// SaveAppointment inserts or replaces by id.
	SaveAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// UpdateAppointment must target an existing id.
	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error
}

type UserRepository interface {
	FindUserByID(
		ctx context.Context,
		id string,
	) (*models.User, error)

	FindUserByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	SaveUser(
		ctx context.Context,
		u *models.User,
	) error
}

// Locker serializes bookings that share a key. Acquire returns false when
// the key is already held.
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(), ok bool, err error)
}
