package models

import "time"

type Appointment struct {
	ID string `gorm:"type:varchar(36);primaryKey" json:"id"`

	ClientID string `gorm:"type:varchar(36);index;not null" json:"client_id"`
	Client   User   `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	ServiceID string  `gorm:"type:varchar(36);index;not null" json:"service_id"`
	Service   Service `gorm:"foreignKey:ServiceID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	StartTime time.Time `gorm:"index;not null" json:"start_time"`
	EndTime   time.Time `gorm:"index;not null" json:"end_time"`

	Status string `gorm:"size:20;not null;default:'confirmed'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
