package catalog

import (
	"context"
	"fmt"

	domain "github.com/BruksfildServices01/appointment-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-booking/internal/models"
)

type ListServices struct {
	repo domain.ServiceRepository
}

func NewListServices(repo domain.ServiceRepository) *ListServices {
	return &ListServices{repo: repo}
}

// Execute returns the catalog ordered by duration. Never nil.
func (uc *ListServices) Execute(ctx context.Context) ([]models.Service, error) {
	services, err := uc.repo.ListServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	if services == nil {
		services = []models.Service{}
	}
	return services, nil
}
