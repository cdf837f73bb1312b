package scheduling

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// Two concurrent bookings for the same window: the per-calendar lock
// serializes check-and-reserve, so exactly one wins.
func TestConcurrentBookingsSameWindow(t *testing.T) {
	f := newFixture(t)
	actor := f.manager()

	const attempts = 8
	var wg sync.WaitGroup
	results := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := bookingReq(f, "10:00")
			_, err := f.sched.Book(context.Background(), req, actor)
			results[i] = err
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range results {
		if err == nil {
			winners++
		} else {
			require.True(t, errors.Is(err, ErrSlotUnavailable), "unexpected error: %v", err)
		}
	}
	require.Equal(t, 1, winners)
	require.Equal(t, 1, f.store.AppointmentCount())
	require.Equal(t, 1, f.store.SlotCount())
}

func TestConcurrentBookingsDistinctWindows(t *testing.T) {
	f := newFixture(t)
	actor := f.manager()

	clocks := []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}
	var wg sync.WaitGroup
	results := make([]error, len(clocks))

	for i, clock := range clocks {
		wg.Add(1)
		go func(i int, clock string) {
			defer wg.Done()
			_, err := f.sched.Book(context.Background(), bookingReq(f, clock), actor)
			results[i] = err
		}(i, clock)
	}
	wg.Wait()

	for i, err := range results {
		require.NoError(t, err, "booking %s failed", clocks[i])
	}
	require.Equal(t, len(clocks), f.store.SlotCount())
}
