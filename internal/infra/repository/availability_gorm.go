package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/appointment-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-booking/internal/models"
)

type AvailabilityGormRepository struct {
	db *gorm.DB
}

func NewAvailabilityGormRepository(db *gorm.DB) *AvailabilityGormRepository {
	return &AvailabilityGormRepository{db: db}
}

func (r *AvailabilityGormRepository) FindAvailabilityOverlapping(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]models.Availability, error) {

	var windows []models.Availability
	if err := r.db.WithContext(ctx).
		Where("start_time < ? AND end_time > ?", to, from).
		Order("start_time ASC").
		Find(&windows).Error; err != nil {
		return nil, err
	}

	return windows, nil
}

func (r *AvailabilityGormRepository) SaveAvailability(
	ctx context.Context,
	av *models.Availability,
) error {
	return r.db.WithContext(ctx).Create(av).Error
}

var _ domain.AvailabilityRepository = (*AvailabilityGormRepository)(nil)
