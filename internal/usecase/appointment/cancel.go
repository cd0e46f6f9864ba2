package appointment

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/appointment-booking/internal/audit"
	domain "github.com/BruksfildServices01/appointment-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-booking/internal/metrics"
	"github.com/BruksfildServices01/appointment-booking/internal/models"
)

type CancelAppointmentInput struct {
	AppointmentID string
	// CancellingUserID is nil for a privileged actor.
	CancellingUserID *string
}

type CancelAppointment struct {
	repo    domain.AppointmentRepository
	audit   *audit.Dispatcher
	metrics *metrics.Metrics
}

func NewCancelAppointment(
	repo domain.AppointmentRepository,
	audit *audit.Dispatcher,
	m *metrics.Metrics,
) *CancelAppointment {
	return &CancelAppointment{
		repo:    repo,
		audit:   audit,
		metrics: m,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	in CancelAppointmentInput,
) (ap *models.Appointment, err error) {

	defer func() { uc.metrics.ObserveCancellation(outcome(err)) }()

	ap, err = uc.repo.FindAppointmentByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, fmt.Errorf("find appointment: %w", err)
	}
	if ap == nil {
		return nil, domain.ErrAppointmentNotFound
	}

	if err := domain.CanCancel(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	if err := domain.CanBeCancelledBy(ap, in.CancellingUserID); err != nil {
		return nil, err
	}

	if err := domain.Cancel(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, fmt.Errorf("update appointment: %w", err)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  in.CancellingUserID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]any{
			"privileged": in.CancellingUserID == nil,
		},
	})

	return ap, nil
}
