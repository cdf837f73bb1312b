package scheduling

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"salondesk-backend/models"
)

func availabilityReq(f *fixture, duration int) AvailabilityRequest {
	return AvailabilityRequest{
		SalonID:         f.salonID,
		EmployeeID:      f.empID,
		Date:            "2025-01-10",
		DurationMinutes: duration,
		DayStart:        "09:00",
		DayEnd:          "18:00",
	}
}

func TestComputeAvailabilitySkipsBusyWindows(t *testing.T) {
	f := newFixture(t)
	f.seedReserved(t, "10:00:00", "10:30:00")

	times, err := f.sched.ComputeAvailability(context.Background(), availabilityReq(f, 30))
	require.NoError(t, err)

	require.Contains(t, times, "09:00")
	require.Contains(t, times, "09:30")
	// 09:45+30m reaches into the reserved window.
	require.NotContains(t, times, "09:45")
	require.NotContains(t, times, "10:00")
	require.NotContains(t, times, "10:15")
	// The slot ends at 10:30; booking may resume exactly there.
	require.Contains(t, times, "10:30")
	// Last candidate that still fits before closing.
	require.Contains(t, times, "17:30")
	require.NotContains(t, times, "17:45")
}

func TestComputeAvailabilityNeverReturnsOverlap(t *testing.T) {
	f := newFixture(t)
	f.seedReserved(t, "10:00:00", "10:30:00")
	f.seedReserved(t, "13:15:00", "14:00:00")

	for _, duration := range []int{15, 30, 45, 60} {
		times, err := f.sched.ComputeAvailability(context.Background(), availabilityReq(f, duration))
		require.NoError(t, err)

		busy, err := f.store.ListBusySlots(context.Background(), f.salonID, f.empID, "2025-01-10")
		require.NoError(t, err)

		for _, start := range times {
			startMin, err := ParseClock(start)
			require.NoError(t, err)
			require.False(t, conflictsWith(busy, startMin, startMin+duration, uuid.Nil),
				"duration %d start %s overlaps a busy slot", duration, start)
		}
	}
}

func TestComputeAvailabilityDurationExceedsWindow(t *testing.T) {
	f := newFixture(t)

	req := availabilityReq(f, 10*60) // 10 hours into a 9-hour day
	times, err := f.sched.ComputeAvailability(context.Background(), req)
	require.NoError(t, err)
	require.Empty(t, times)
}

func TestComputeAvailabilityIgnoresOtherEmployees(t *testing.T) {
	f := newFixture(t)

	otherEmp := uuid.New()
	slot := models.Slot{
		ID:         uuid.New(),
		SalonID:    f.salonID,
		EmployeeID: otherEmp,
		Date:       "2025-01-10",
		StartTime:  "09:00:00",
		EndTime:    "18:00:00",
		State:      models.SlotBlocked,
		Reason:     "day off",
	}
	require.NoError(t, f.store.CreateSlot(context.Background(), &slot))

	times, err := f.sched.ComputeAvailability(context.Background(), availabilityReq(f, 30))
	require.NoError(t, err)
	require.Contains(t, times, "09:00")
	require.Len(t, times, 35) // full 09:00-18:00 grid for a 30-minute service
}

func TestComputeAvailabilityIsRestartable(t *testing.T) {
	f := newFixture(t)
	f.seedReserved(t, "10:00:00", "10:30:00")

	first, err := f.sched.ComputeAvailability(context.Background(), availabilityReq(f, 30))
	require.NoError(t, err)
	second, err := f.sched.ComputeAvailability(context.Background(), availabilityReq(f, 30))
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestComputeAvailabilityRejectsBadInput(t *testing.T) {
	f := newFixture(t)

	req := availabilityReq(f, 0)
	_, err := f.sched.ComputeAvailability(context.Background(), req)
	require.ErrorIs(t, err, ErrValidation)

	req = availabilityReq(f, 30)
	req.DayStart = "bogus"
	_, err = f.sched.ComputeAvailability(context.Background(), req)
	require.ErrorIs(t, err, ErrValidation)
}
