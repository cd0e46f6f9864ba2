package models

import "time"

// Service is catalog reference data; DurationMin drives booking end times.
type Service struct {
	ID string `gorm:"type:varchar(36);primaryKey" json:"id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	DurationMin int     `gorm:"not null" json:"duration"`
	Price       float64 `json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
