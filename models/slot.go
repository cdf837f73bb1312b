package models

import (
	"time"

	"github.com/google/uuid"
)

// Slot states.
const (
	SlotAvailable = "available"
	SlotReserved  = "reserved"
	SlotBlocked   = "blocked"
)

// Persisted slot time layouts.
const (
	SlotDateLayout = "2006-01-02"
	SlotTimeLayout = "15:04:05"
)

// Slot is one entry in the scheduling ledger. For a given (salon,
// employee, date) no two reserved/blocked slots may overlap; available
// slots carry no such constraint and may be synthesized rather than
// stored.
type Slot struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	SalonID    uuid.UUID `gorm:"type:uuid;index;not null"`
	EmployeeID uuid.UUID `gorm:"type:uuid;index;not null"`

	Date      string `gorm:"type:varchar(10);index;not null"` // YYYY-MM-DD
	StartTime string `gorm:"type:varchar(8);not null"`        // HH:MM:SS
	EndTime   string `gorm:"type:varchar(8);not null"`        // HH:MM:SS
	State     string `gorm:"type:varchar(10);not null"`

	// Set only while reserved.
	AppointmentID *uuid.UUID `gorm:"type:uuid;index"`
	ClientID      *uuid.UUID `gorm:"type:uuid"`
	ClientName    string
	ServiceID     *uuid.UUID `gorm:"type:uuid"`

	// Set only while blocked.
	Reason    string
	CreatedBy *uuid.UUID `gorm:"type:uuid"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBusy reports whether the slot constrains other bookings.
func (s *Slot) IsBusy() bool {
	return s.State == SlotReserved || s.State == SlotBlocked
}
