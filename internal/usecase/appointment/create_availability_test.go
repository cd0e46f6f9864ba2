package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/appointment-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-booking/internal/models"
)

func usersFixture() *mockUserRepo {
	users := &mockUserRepo{}
	users.On("FindUserByID", mock.Anything, "pro-1").
		Return(&models.User{ID: "pro-1", Name: "Dr. Lima", Role: "PROFESSIONAL"}, nil)
	users.On("FindUserByID", mock.Anything, "client-1").
		Return(&models.User{ID: "client-1", Name: "Ana", Role: "CLIENT"}, nil)
	users.On("FindUserByID", mock.Anything, "client-2").
		Return(&models.User{ID: "client-2", Name: "Bruno", Role: "CLIENT"}, nil)
	users.On("FindUserByID", mock.Anything, "ghost").
		Return((*models.User)(nil), nil)
	return users
}

func TestCreateAvailability_Professional(t *testing.T) {
	availRepo := &mockAvailabilityRepo{}
	availRepo.On("SaveAvailability", mock.Anything, mock.Anything).Return(nil)

	uc := NewCreateAvailability(availRepo, usersFixture(), nil).WithIDs(func() string { return "w-1" })
	av, err := uc.Execute(context.Background(), CreateAvailabilityInput{
		ProfessionalID: "pro-1",
		StartTime:      utc("2025-12-18T09:00:00Z"),
		EndTime:        utc("2025-12-18T12:00:00Z"),
	})

	require.NoError(t, err)
	assert.Equal(t, "w-1", av.ID)
	assert.Equal(t, "pro-1", av.ProfessionalID)
	availRepo.AssertNumberOfCalls(t, "SaveAvailability", 1)
}

func TestCreateAvailability_RejectsNonProfessionals(t *testing.T) {
	for _, actor := range []string{"client-1", "ghost"} {
		availRepo := &mockAvailabilityRepo{}

		_, err := NewCreateAvailability(availRepo, usersFixture(), nil).Execute(context.Background(), CreateAvailabilityInput{
			ProfessionalID: actor,
			StartTime:      utc("2025-12-18T09:00:00Z"),
			EndTime:        utc("2025-12-18T12:00:00Z"),
		})

		assert.ErrorIs(t, err, domain.ErrForbidden, actor)
		availRepo.AssertNotCalled(t, "SaveAvailability", mock.Anything, mock.Anything)
	}
}

func TestCreateAvailability_RejectsEmptyOrInvertedRange(t *testing.T) {
	availRepo := &mockAvailabilityRepo{}
	uc := NewCreateAvailability(availRepo, usersFixture(), nil)

	_, err := uc.Execute(context.Background(), CreateAvailabilityInput{
		ProfessionalID: "pro-1",
		StartTime:      utc("2025-12-18T12:00:00Z"),
		EndTime:        utc("2025-12-18T12:00:00Z"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTimeRange)

	_, err = uc.Execute(context.Background(), CreateAvailabilityInput{
		ProfessionalID: "pro-1",
		StartTime:      utc("2025-12-18T12:00:00Z"),
		EndTime:        utc("2025-12-18T09:00:00Z"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTimeRange)

	availRepo.AssertNotCalled(t, "SaveAvailability", mock.Anything, mock.Anything)
}
