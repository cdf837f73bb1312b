package scheduling

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// StepMinutes is the availability grid granularity.
const StepMinutes = 15

// Scheduler owns the booking ledger: availability, booking, reschedule,
// cancellation and manual blocks all go through it, behind one permission
// gate. Check-and-reserve is serialized per (salon, employee, date) so
// two concurrent bookings for the same window cannot both pass the
// conflict check.
type Scheduler struct {
	store   Store
	clients ClientResolver
	guard   *Guard

	mu    sync.Mutex
	locks map[string]*sync.Mutex

	now func() time.Time
}

func NewScheduler(store Store, clients ClientResolver) *Scheduler {
	return &Scheduler{
		store:   store,
		clients: clients,
		guard:   NewGuard(store),
		locks:   map[string]*sync.Mutex{},
		now:     time.Now,
	}
}

// Store exposes the underlying ledger for read-only collaborators.
func (s *Scheduler) Store() Store {
	return s.store
}

// calendarLock returns the mutex serializing writes to one employee's day.
func (s *Scheduler) calendarLock(salonID, employeeID uuid.UUID, date string) *sync.Mutex {
	key := fmt.Sprintf("%s|%s|%s", salonID, employeeID, date)
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	return lock
}

// Window is a slot's position on the calendar, in the ledger's persisted
// formats. Reschedule returns the prior window so a presentation layer
// can apply the move optimistically and revert on failure.
type Window struct {
	Date  string `json:"date"`
	Start string `json:"start"`
	End   string `json:"end"`
}
