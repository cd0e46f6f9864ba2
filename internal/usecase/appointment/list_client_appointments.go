package appointment

import (
	"context"
	"fmt"

	domain "github.com/BruksfildServices01/appointment-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-booking/internal/domain/user"
	"github.com/BruksfildServices01/appointment-booking/internal/models"
)

type ListClientAppointments struct {
	appointmentRepo domain.AppointmentRepository
	userRepo        domain.UserRepository
}

func NewListClientAppointments(
	appointmentRepo domain.AppointmentRepository,
	userRepo domain.UserRepository,
) *ListClientAppointments {
	return &ListClientAppointments{
		appointmentRepo: appointmentRepo,
		userRepo:        userRepo,
	}
}

// Execute lists clientID's appointments as seen by actorID. Clients only
// see their own; professionals see anyone's.
func (uc *ListClientAppointments) Execute(
	ctx context.Context,
	actorID string,
	clientID string,
) ([]models.Appointment, error) {

	actor, err := uc.userRepo.FindUserByID(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if actor == nil {
		return nil, user.ErrUserNotFound
	}
	if !user.CanAccessAppointments(actor, clientID) {
		return nil, domain.ErrForbidden
	}

	appointments, err := uc.appointmentRepo.FindAppointmentsByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	if appointments == nil {
		appointments = []models.Appointment{}
	}
	return appointments, nil
}
