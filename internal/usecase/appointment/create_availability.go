package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/BruksfildServices01/appointment-booking/internal/audit"
	domain "github.com/BruksfildServices01/appointment-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-booking/internal/domain/user"
	"github.com/BruksfildServices01/appointment-booking/internal/models"
	"github.com/BruksfildServices01/appointment-booking/internal/timezone"
)

type CreateAvailabilityInput struct {
	ProfessionalID string
	StartTime      time.Time
	EndTime        time.Time
}

// CreateAvailability publishes a window. Overlap with existing windows is
// allowed; the slot walker tolerates it.
type CreateAvailability struct {
	availabilityRepo domain.AvailabilityRepository
	userRepo         domain.UserRepository
	audit            *audit.Dispatcher
	newID            IDFunc
}

func NewCreateAvailability(
	availabilityRepo domain.AvailabilityRepository,
	userRepo domain.UserRepository,
	audit *audit.Dispatcher,
) *CreateAvailability {
	return &CreateAvailability{
		availabilityRepo: availabilityRepo,
		userRepo:         userRepo,
		audit:            audit,
		newID:            defaultID,
	}
}

func (uc *CreateAvailability) WithIDs(f IDFunc) *CreateAvailability {
	uc.newID = f
	return uc
}

func (uc *CreateAvailability) Execute(
	ctx context.Context,
	in CreateAvailabilityInput,
) (*models.Availability, error) {

	actor, err := uc.userRepo.FindUserByID(ctx, in.ProfessionalID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if !user.HasRole(actor, user.RoleProfessional) {
		return nil, domain.ErrForbidden
	}

	start := in.StartTime.In(timezone.Canonical)
	end := in.EndTime.In(timezone.Canonical)
	if !start.Before(end) {
		return nil, domain.ErrInvalidTimeRange
	}

	av := &models.Availability{
		ID:             uc.newID(),
		ProfessionalID: actor.ID,
		StartTime:      start,
		EndTime:        end,
	}

	if err := uc.availabilityRepo.SaveAvailability(ctx, av); err != nil {
		return nil, fmt.Errorf("save availability: %w", err)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actor.ID,
		Action:   "availability_created",
		Entity:   "availability",
		EntityID: av.ID,
	})

	return av, nil
}
