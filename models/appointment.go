package models

import (
	"time"

	"github.com/google/uuid"
)

// Appointment statuses.
const (
	AppointmentConfirmed = "confirmed"
	AppointmentCancelled = "cancelled"
)

// Appointment is the authoritative booking record. Exactly one reserved
// Slot should reference each confirmed appointment; that link is kept by
// the scheduling core, not by a foreign-key constraint.
type Appointment struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	SalonID    uuid.UUID `gorm:"type:uuid;index;not null"`
	EmployeeID uuid.UUID `gorm:"type:uuid;index;not null"`
	ClientID   uuid.UUID `gorm:"type:uuid;index;not null"`
	OwnerID    uuid.UUID `gorm:"type:uuid;index;not null"` // company id via salon ownership

	// Client contact snapshot at booking time.
	ClientName  string `gorm:"not null"`
	ClientPhone string
	ClientEmail string

	AppointmentTime time.Time `gorm:"index;not null"`
	EndTime         time.Time `gorm:"not null"`

	ServiceID uuid.UUID `gorm:"type:uuid;index;not null"`
	Price     float64   `gorm:"type:decimal(10,2)"`
	Status    string    `gorm:"type:varchar(20);default:'confirmed'"`
	Source    string    `gorm:"type:varchar(20)"` // booking channel: 'staff', 'web', 'phone'

	CreatedAt time.Time
	UpdatedAt time.Time
}
