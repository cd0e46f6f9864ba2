package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/appointment-booking/internal/models"
)

type stubServiceRepo struct {
	services []models.Service
	err      error
}

func (s stubServiceRepo) FindServiceByID(_ context.Context, id string) (*models.Service, error) {
	for i := range s.services {
		if s.services[i].ID == id {
			return &s.services[i], nil
		}
	}
	return nil, s.err
}

func (s stubServiceRepo) ListServices(context.Context) ([]models.Service, error) {
	return s.services, s.err
}

func TestListServices(t *testing.T) {
	repo := stubServiceRepo{services: []models.Service{
		{ID: "s30", Name: "Consultation", DurationMin: 30},
		{ID: "s60", Name: "Session", DurationMin: 60},
	}}

	out, err := NewListServices(repo).Execute(context.Background())
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestListServices_EmptyCatalog(t *testing.T) {
	out, err := NewListServices(stubServiceRepo{}).Execute(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, out)
}

func TestListServices_Error(t *testing.T) {
	boom := errors.New("db gone")
	_, err := NewListServices(stubServiceRepo{err: boom}).Execute(context.Background())
	assert.ErrorIs(t, err, boom)
}
