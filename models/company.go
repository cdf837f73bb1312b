package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Company is the top-level tenant. Every salon belongs to exactly one
// company; cross-company access is denied at the guard level.
type Company struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	Name     string    `gorm:"not null"`
	Email    string
	Phone    string
	IsActive bool `gorm:"default:true"`

	Salons []Salon `gorm:"foreignKey:CompanyID"`

	gorm.Model
}

func (co *Company) BeforeCreate(tx *gorm.DB) (err error) {
	if co.ID == uuid.Nil {
		co.ID = uuid.New()
	}
	return
}
