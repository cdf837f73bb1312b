package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"

	"salondesk-backend/models"
)

// Store is the scheduling ledger's persistence contract. The production
// implementation lives in the storage package; tests use MemoryStore.
// Every call is scoped by salon id, so the store never returns another
// tenant's records.
type Store interface {
	// ListBusySlots returns the reserved and blocked slots for one
	// employee on one date. Available slots are never returned.
	ListBusySlots(ctx context.Context, salonID, employeeID uuid.UUID, date string) ([]models.Slot, error)

	GetSlot(ctx context.Context, slotID uuid.UUID) (*models.Slot, error)
	CreateSlot(ctx context.Context, slot *models.Slot) error
	UpdateSlot(ctx context.Context, slot *models.Slot) error
	DeleteSlot(ctx context.Context, slotID uuid.UUID) error

	GetService(ctx context.Context, salonID, serviceID uuid.UUID) (*models.Service, error)

	CreateAppointment(ctx context.Context, appt *models.Appointment) error
	DeleteAppointment(ctx context.Context, apptID uuid.UUID) error
	UpdateAppointmentStatus(ctx context.Context, apptID uuid.UUID, status string) error

	// RecordClientVisit bumps the client's visit counter and last-visit
	// timestamp after a booking commits.
	RecordClientVisit(ctx context.Context, clientID uuid.UUID, at time.Time) error

	// SalonCompany resolves a salon to its owning company for the
	// ownership-chain checks in the access guard.
	SalonCompany(ctx context.Context, salonID uuid.UUID) (uuid.UUID, error)
}

// ClientInput identifies the client a booking is for. Phone is the
// primary dedupe key, email the fallback.
type ClientInput struct {
	Name  string
	Phone string
	Email string
}

// ClientResolver finds an existing client by phone or email within the
// salon, or creates one.
type ClientResolver interface {
	Resolve(ctx context.Context, salonID uuid.UUID, in ClientInput) (*models.Client, error)
}
