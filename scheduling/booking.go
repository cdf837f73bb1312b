package scheduling

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"salondesk-backend/models"
)

// BookingRequest carries everything needed to create an appointment plus
// its reserved slot.
type BookingRequest struct {
	SalonID    uuid.UUID
	EmployeeID uuid.UUID
	ServiceID  uuid.UUID
	Client     ClientInput
	Start      time.Time
	Source     string // booking channel: 'staff', 'web', 'phone'
}

func (r *BookingRequest) validate() error {
	switch {
	case r.SalonID == uuid.Nil:
		return fmt.Errorf("%w: salon is required", ErrValidation)
	case r.EmployeeID == uuid.Nil:
		return fmt.Errorf("%w: employee is required", ErrValidation)
	case r.ServiceID == uuid.Nil:
		return fmt.Errorf("%w: service is required", ErrValidation)
	case r.Client.Name == "":
		return fmt.Errorf("%w: client name is required", ErrValidation)
	case r.Start.IsZero():
		return fmt.Errorf("%w: start time is required", ErrValidation)
	}
	return nil
}

// Book creates an appointment and its reserved slot. The conflict check
// runs inside the per-calendar lock so a concurrent booking for the same
// window cannot slip between check and write. If the slot write fails the
// appointment is deleted again; on any failure path nothing persists.
func (s *Scheduler) Book(ctx context.Context, req BookingRequest, actor Actor) (*models.Appointment, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	if req.Start.Before(s.now()) {
		return nil, fmt.Errorf("%w: start time is in the past", ErrValidation)
	}
	if err := s.guard.CanAccess(ctx, actor, req.SalonID, req.EmployeeID); err != nil {
		return nil, err
	}

	service, err := s.store.GetService(ctx, req.SalonID, req.ServiceID)
	if err != nil {
		return nil, err
	}
	if service.Duration <= 0 {
		return nil, fmt.Errorf("%w: service has no duration", ErrValidation)
	}

	end := req.Start.Add(time.Duration(service.Duration) * time.Minute)
	date := slotDate(req.Start)
	startMin := minuteOfDay(req.Start)
	endMin := startMin + service.Duration

	lock := s.calendarLock(req.SalonID, req.EmployeeID, date)
	lock.Lock()
	defer lock.Unlock()

	// Re-check at commit time; the ledger may have moved since the
	// candidate was offered.
	conflict, err := s.HasConflict(ctx, req.SalonID, req.EmployeeID, date, startMin, endMin)
	if err != nil {
		return nil, fmt.Errorf("conflict check: %w", err)
	}
	if conflict {
		return nil, ErrSlotUnavailable
	}

	client, err := s.clients.Resolve(ctx, req.SalonID, req.Client)
	if err != nil {
		return nil, fmt.Errorf("resolve client: %w", err)
	}

	ownerID, err := s.store.SalonCompany(ctx, req.SalonID)
	if err != nil {
		return nil, fmt.Errorf("resolve salon owner: %w", err)
	}

	appt := &models.Appointment{
		ID:              uuid.New(),
		SalonID:         req.SalonID,
		EmployeeID:      req.EmployeeID,
		ClientID:        client.ID,
		OwnerID:         ownerID,
		ClientName:      client.Name,
		ClientPhone:     client.Phone,
		ClientEmail:     client.Email,
		AppointmentTime: req.Start,
		EndTime:         end,
		ServiceID:       req.ServiceID,
		Price:           service.Price,
		Status:          models.AppointmentConfirmed,
		Source:          req.Source,
	}
	if err := s.store.CreateAppointment(ctx, appt); err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	slot := &models.Slot{
		ID:            uuid.New(),
		SalonID:       req.SalonID,
		EmployeeID:    req.EmployeeID,
		Date:          date,
		StartTime:     FormatClock(startMin),
		EndTime:       FormatClock(endMin),
		State:         models.SlotReserved,
		AppointmentID: &appt.ID,
		ClientID:      &client.ID,
		ClientName:    client.Name,
		ServiceID:     &req.ServiceID,
	}
	if err := s.store.CreateSlot(ctx, slot); err != nil {
		// Compensate: an appointment without a slot must not persist.
		// If the delete itself fails, report the original error and
		// leave the orphan for the reconciliation sweep.
		if derr := s.store.DeleteAppointment(ctx, appt.ID); derr != nil {
			log.Printf("[SCHED] compensation failed, orphaned appointment %s: %v", appt.ID, derr)
		}
		return nil, fmt.Errorf("create slot: %w", err)
	}

	// Visit stats are bookkeeping, not part of the booking; a failure
	// here never unwinds the appointment.
	if err := s.store.RecordClientVisit(ctx, client.ID, req.Start); err != nil {
		log.Printf("[SCHED] visit counter update failed for client %s: %v", client.ID, err)
	}

	return appt, nil
}
