package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Salon struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CompanyID uuid.UUID `gorm:"type:uuid;index;not null"`
	Name      string    `gorm:"not null"`
	Address   string
	Phone     string

	// Per-weekday open/close windows, e.g. {"monday": {"open": "09:00", "close": "20:00", "closed": false}}
	WorkingHours     JSONB `gorm:"type:jsonb;default:'{}'"`
	SMSNotifications bool  `gorm:"default:false"`

	Employees []Employee `gorm:"foreignKey:SalonID"`
	Clients   []Client   `gorm:"foreignKey:SalonID"`
	Services  []Service  `gorm:"foreignKey:SalonID"`

	gorm.Model
}

func (s *Salon) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
