package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"salondesk-backend/models"
)

// Cancel releases a slot. A reserved slot goes back to available with its
// linkage cleared and the appointment is marked cancelled; a blocked slot
// is deleted outright. Cancelling a slot that is already available is an
// idempotent no-op.
func (s *Scheduler) Cancel(ctx context.Context, slotID uuid.UUID, actor Actor) error {
	slot, err := s.store.GetSlot(ctx, slotID)
	if err != nil {
		return err
	}
	if err := s.guard.CanAccess(ctx, actor, slot.SalonID, slot.EmployeeID); err != nil {
		return err
	}

	switch slot.State {
	case models.SlotAvailable:
		return nil

	case models.SlotReserved:
		apptID := slot.AppointmentID

		slot.State = models.SlotAvailable
		slot.AppointmentID = nil
		slot.ClientID = nil
		slot.ClientName = ""
		slot.ServiceID = nil
		if err := s.store.UpdateSlot(ctx, slot); err != nil {
			return fmt.Errorf("release slot: %w", err)
		}
		if apptID != nil {
			if err := s.store.UpdateAppointmentStatus(ctx, *apptID, models.AppointmentCancelled); err != nil {
				return fmt.Errorf("mark appointment cancelled: %w", err)
			}
		}
		return nil

	case models.SlotBlocked:
		if err := s.store.DeleteSlot(ctx, slot.ID); err != nil {
			return fmt.Errorf("delete blocked slot: %w", err)
		}
		return nil
	}

	return fmt.Errorf("%w: unknown slot state %q", ErrValidation, slot.State)
}

// Block reserves a window for non-client time (lunch, training, time
// off). Blocks obey the same no-overlap rule as bookings.
func (s *Scheduler) Block(ctx context.Context, salonID, employeeID uuid.UUID, start, end time.Time, reason string, actor Actor) (*models.Slot, error) {
	if start.IsZero() || end.IsZero() || !end.After(start) {
		return nil, fmt.Errorf("%w: end must be after start", ErrValidation)
	}
	if slotDate(start) != slotDate(end) {
		return nil, fmt.Errorf("%w: block must start and end on the same day", ErrValidation)
	}
	if err := s.guard.CanAccess(ctx, actor, salonID, employeeID); err != nil {
		return nil, err
	}

	date := slotDate(start)
	startMin := minuteOfDay(start)
	endMin := minuteOfDay(end)

	lock := s.calendarLock(salonID, employeeID, date)
	lock.Lock()
	defer lock.Unlock()

	conflict, err := s.HasConflict(ctx, salonID, employeeID, date, startMin, endMin)
	if err != nil {
		return nil, fmt.Errorf("conflict check: %w", err)
	}
	if conflict {
		return nil, ErrSlotUnavailable
	}

	slot := &models.Slot{
		ID:         uuid.New(),
		SalonID:    salonID,
		EmployeeID: employeeID,
		Date:       date,
		StartTime:  FormatClock(startMin),
		EndTime:    FormatClock(endMin),
		State:      models.SlotBlocked,
		Reason:     reason,
		CreatedBy:  &actor.UserID,
	}
	if err := s.store.CreateSlot(ctx, slot); err != nil {
		return nil, fmt.Errorf("create slot: %w", err)
	}
	return slot, nil
}
