package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Employee is the schedulable resource: slots and appointments always
// belong to exactly one employee within one salon.
type Employee struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key"`
	SalonID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name     string `gorm:"not null"`
	Phone    string
	Email    string
	Title    string
	IsActive bool `gorm:"default:true"`

	gorm.Model
}

func (e *Employee) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return
}
