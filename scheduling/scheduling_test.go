package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"salondesk-backend/models"
)

// Shared fixture: one company, one salon, one employee, one 30-minute
// service, and a scheduler over the in-memory store.
type fixture struct {
	store     *MemoryStore
	sched     *Scheduler
	companyID uuid.UUID
	salonID   uuid.UUID
	empID     uuid.UUID
	serviceID uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		store:     NewMemoryStore(),
		companyID: uuid.New(),
		salonID:   uuid.New(),
		empID:     uuid.New(),
		serviceID: uuid.New(),
	}
	f.store.AddSalon(f.salonID, f.companyID)
	f.store.AddService(models.Service{
		ID:       f.serviceID,
		SalonID:  f.salonID,
		Name:     "Haircut",
		Price:    45,
		Duration: 30,
		IsActive: true,
	})
	f.sched = NewScheduler(f.store, f.store)
	// Pin the clock before the fixture date so bookings are never "in
	// the past" by accident.
	f.sched.now = func() time.Time { return f.at("08:00").AddDate(0, 0, -1) }
	return f
}

func (f *fixture) manager() Actor {
	return Actor{UserID: uuid.New(), Role: RoleSalonManager, SalonID: f.salonID}
}

func (f *fixture) at(clock string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", "2025-01-10 "+clock)
	if err != nil {
		panic(err)
	}
	return t
}

// seedReserved plants a reserved slot directly in the ledger.
func (f *fixture) seedReserved(t *testing.T, start, end string) models.Slot {
	t.Helper()
	apptID := uuid.New()
	clientID := uuid.New()
	slot := models.Slot{
		ID:            uuid.New(),
		SalonID:       f.salonID,
		EmployeeID:    f.empID,
		Date:          "2025-01-10",
		StartTime:     start,
		EndTime:       end,
		State:         models.SlotReserved,
		AppointmentID: &apptID,
		ClientID:      &clientID,
		ClientName:    "Dana",
		ServiceID:     &f.serviceID,
	}
	require.NoError(t, f.store.CreateSlot(context.Background(), &slot))
	require.NoError(t, f.store.CreateAppointment(context.Background(), &models.Appointment{
		ID:         apptID,
		SalonID:    f.salonID,
		EmployeeID: f.empID,
		ClientID:   clientID,
		OwnerID:    f.companyID,
		ClientName: "Dana",
		Status:     models.AppointmentConfirmed,
	}))
	return slot
}

func TestParseClock(t *testing.T) {
	cases := map[string]int{
		"09:00":    540,
		"09:00:00": 540,
		"10:45:00": 645,
		"00:15":    15,
		"24:00":    1440,
	}
	for in, want := range cases {
		got, err := ParseClock(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	rejected := []string{
		"not a clock",
		"24:30",
		"09:75",
		"25:00",
		"09:30:99",
		"09:30xyz",
		"09:30 ",
		"09",
		"09:15:00:00",
	}
	for _, in := range rejected {
		_, err := ParseClock(in)
		require.Error(t, err, in)
	}
}

func TestOverlapIsHalfOpen(t *testing.T) {
	// Adjacent windows never conflict.
	require.False(t, overlaps(540, 570, 570, 600))
	require.False(t, overlaps(570, 600, 540, 570))

	require.True(t, overlaps(540, 600, 570, 630))
	require.True(t, overlaps(570, 630, 540, 600))
	require.True(t, overlaps(540, 600, 555, 585)) // containment
}
