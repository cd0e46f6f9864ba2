package models

import "time"

type Availability struct {
	ID             string `gorm:"type:varchar(36);primaryKey" json:"id"`
	ProfessionalID string `gorm:"type:varchar(36);index;not null" json:"professional_id"`

	StartTime time.Time `gorm:"index;not null" json:"start_time"`
	EndTime   time.Time `gorm:"index;not null" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
