package scheduling

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Reschedule moves an existing reserved or blocked slot to a new window
// (drag or resize). The move runs through the same conflict check as
// booking, excluding the slot being moved. It returns the prior window so
// the caller can revert an optimistic update when the move fails.
func (s *Scheduler) Reschedule(ctx context.Context, slotID uuid.UUID, newStart, newEnd time.Time, actor Actor) (Window, error) {
	var prev Window

	if newStart.IsZero() || newEnd.IsZero() || !newEnd.After(newStart) {
		return prev, fmt.Errorf("%w: end must be after start", ErrValidation)
	}
	if slotDate(newStart) != slotDate(newEnd) {
		return prev, fmt.Errorf("%w: slot must start and end on the same day", ErrValidation)
	}

	slot, err := s.store.GetSlot(ctx, slotID)
	if err != nil {
		return prev, err
	}
	if err := s.guard.CanAccess(ctx, actor, slot.SalonID, slot.EmployeeID); err != nil {
		return prev, err
	}
	if !slot.IsBusy() {
		return prev, fmt.Errorf("%w: only reserved or blocked slots can be moved", ErrValidation)
	}

	prev = Window{Date: slot.Date, Start: slot.StartTime, End: slot.EndTime}

	date := slotDate(newStart)
	startMin := minuteOfDay(newStart)
	endMin := minuteOfDay(newEnd)

	// A move may span two calendar days; take both day locks in sorted
	// order so concurrent moves cannot deadlock.
	unlock := s.lockDays(slot.SalonID, slot.EmployeeID, slot.Date, date)
	defer unlock()

	busy, err := s.store.ListBusySlots(ctx, slot.SalonID, slot.EmployeeID, date)
	if err != nil {
		return prev, fmt.Errorf("list busy slots: %w", err)
	}
	if conflictsWith(busy, startMin, endMin, slot.ID) {
		return prev, ErrSlotUnavailable
	}

	slot.Date = date
	slot.StartTime = FormatClock(startMin)
	slot.EndTime = FormatClock(endMin)
	if err := s.store.UpdateSlot(ctx, slot); err != nil {
		return prev, fmt.Errorf("update slot: %w", err)
	}
	return prev, nil
}

// lockDays locks the calendar of one employee for one or two dates and
// returns the matching unlock.
func (s *Scheduler) lockDays(salonID, employeeID uuid.UUID, dates ...string) func() {
	unique := map[string]bool{}
	keys := []string{}
	for _, d := range dates {
		if !unique[d] {
			unique[d] = true
			keys = append(keys, d)
		}
	}
	sort.Strings(keys)

	locks := make([]*sync.Mutex, 0, len(keys))
	for _, d := range keys {
		lock := s.calendarLock(salonID, employeeID, d)
		lock.Lock()
		locks = append(locks, lock)
	}
	return func() {
		for i := len(locks) - 1; i >= 0; i-- {
			locks[i].Unlock()
		}
	}
}
