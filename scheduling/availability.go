package scheduling

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// AvailabilityRequest asks for the open start times of one employee's day.
// DayStart/DayEnd are the salon's working window for that date ("HH:MM").
type AvailabilityRequest struct {
	SalonID         uuid.UUID
	EmployeeID      uuid.UUID
	Date            string // YYYY-MM-DD
	DurationMinutes int
	DayStart        string
	DayEnd          string
}

// ComputeAvailability walks the working day on a fixed 15-minute grid and
// returns every start time ("HH:MM", ascending) whose window fits before
// closing and overlaps no reserved or blocked slot. It is a pure function
// of the current ledger state; nothing is retained between calls, and
// other employees' slots never constrain the result.
func (s *Scheduler) ComputeAvailability(ctx context.Context, req AvailabilityRequest) ([]string, error) {
	if req.DurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", ErrValidation)
	}

	dayStart, err := ParseClock(req.DayStart)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	dayEnd, err := ParseClock(req.DayEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	busy, err := s.store.ListBusySlots(ctx, req.SalonID, req.EmployeeID, req.Date)
	if err != nil {
		return nil, fmt.Errorf("list busy slots: %w", err)
	}

	candidates := []string{}
	for cursor := dayStart; cursor+req.DurationMinutes <= dayEnd; cursor += StepMinutes {
		if conflictsWith(busy, cursor, cursor+req.DurationMinutes, uuid.Nil) {
			continue
		}
		candidates = append(candidates, FormatClockShort(cursor))
	}
	return candidates, nil
}
