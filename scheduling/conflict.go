package scheduling

import (
	"context"

	"github.com/google/uuid"

	"salondesk-backend/models"
)

// overlaps is the half-open interval test: [aStart,aEnd) and
// [bStart,bEnd) intersect. Adjacent intervals do not conflict.
func overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// conflictsWith reports whether [startMin,endMin) overlaps any busy slot
// in the list, skipping the slot with the exclude id (uuid.Nil to skip
// nothing; reschedules must not conflict with the slot being moved).
func conflictsWith(busy []models.Slot, startMin, endMin int, exclude uuid.UUID) bool {
	for _, slot := range busy {
		if slot.ID == exclude {
			continue
		}
		if !slot.IsBusy() {
			continue
		}
		slotStart, err := ParseClock(slot.StartTime)
		if err != nil {
			continue
		}
		slotEnd, err := ParseClock(slot.EndTime)
		if err != nil {
			continue
		}
		if overlaps(startMin, endMin, slotStart, slotEnd) {
			return true
		}
	}
	return false
}

// HasConflict queries the ledger and reports whether the proposed window
// collides with a reserved or blocked slot for that employee and date.
// Callers re-run this at commit time; the store may have changed since
// availability was computed.
func (s *Scheduler) HasConflict(ctx context.Context, salonID, employeeID uuid.UUID, date string, startMin, endMin int) (bool, error) {
	busy, err := s.store.ListBusySlots(ctx, salonID, employeeID, date)
	if err != nil {
		return false, err
	}
	return conflictsWith(busy, startMin, endMin, uuid.Nil), nil
}
