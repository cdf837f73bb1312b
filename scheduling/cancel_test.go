package scheduling

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"salondesk-backend/models"
)

func TestCancelReservedReleasesSlotAndCancelsAppointment(t *testing.T) {
	f := newFixture(t)
	slot := f.seedReserved(t, "10:00:00", "10:30:00")
	apptID := *slot.AppointmentID

	require.NoError(t, f.sched.Cancel(context.Background(), slot.ID, f.manager()))

	released, ok := f.store.Slot(slot.ID)
	require.True(t, ok)
	require.Equal(t, models.SlotAvailable, released.State)
	require.Nil(t, released.AppointmentID)
	require.Nil(t, released.ClientID)
	require.Nil(t, released.ServiceID)
	require.Empty(t, released.ClientName)

	appt, ok := f.store.Appointment(apptID)
	require.True(t, ok)
	require.Equal(t, models.AppointmentCancelled, appt.Status)

	// The window is bookable again.
	busy, err := f.store.ListBusySlots(context.Background(), f.salonID, f.empID, "2025-01-10")
	require.NoError(t, err)
	require.Empty(t, busy)
}

func TestCancelAvailableIsIdempotent(t *testing.T) {
	f := newFixture(t)
	slot := f.seedReserved(t, "10:00:00", "10:30:00")

	require.NoError(t, f.sched.Cancel(context.Background(), slot.ID, f.manager()))
	// Second cancel is a no-op, not an error.
	require.NoError(t, f.sched.Cancel(context.Background(), slot.ID, f.manager()))

	released, ok := f.store.Slot(slot.ID)
	require.True(t, ok)
	require.Equal(t, models.SlotAvailable, released.State)
}

func TestCancelBlockedDeletesSlot(t *testing.T) {
	f := newFixture(t)
	actor := f.manager()

	slot, err := f.sched.Block(context.Background(), f.salonID, f.empID,
		f.at("12:00"), f.at("13:00"), "lunch", actor)
	require.NoError(t, err)

	require.NoError(t, f.sched.Cancel(context.Background(), slot.ID, actor))

	_, ok := f.store.Slot(slot.ID)
	require.False(t, ok)
}

func TestCancelDeniedForForeignSalonManager(t *testing.T) {
	f := newFixture(t)
	slot := f.seedReserved(t, "10:00:00", "10:30:00")

	foreign := Actor{UserID: uuid.New(), Role: RoleSalonManager, SalonID: uuid.New()}
	err := f.sched.Cancel(context.Background(), slot.ID, foreign)
	require.ErrorIs(t, err, ErrPermissionDenied)

	// Slot unchanged.
	unchanged, ok := f.store.Slot(slot.ID)
	require.True(t, ok)
	require.Equal(t, models.SlotReserved, unchanged.State)
	require.NotNil(t, unchanged.AppointmentID)
}

func TestBlockRecordsReasonAndCreator(t *testing.T) {
	f := newFixture(t)
	actor := f.manager()

	slot, err := f.sched.Block(context.Background(), f.salonID, f.empID,
		f.at("12:00"), f.at("13:00"), "lunch", actor)
	require.NoError(t, err)

	require.Equal(t, models.SlotBlocked, slot.State)
	require.Equal(t, "lunch", slot.Reason)
	require.Equal(t, actor.UserID, *slot.CreatedBy)
	require.Equal(t, "12:00:00", slot.StartTime)
	require.Equal(t, "13:00:00", slot.EndTime)
}

func TestBlockRejectsOverlap(t *testing.T) {
	f := newFixture(t)
	f.seedReserved(t, "12:30:00", "13:00:00")

	_, err := f.sched.Block(context.Background(), f.salonID, f.empID,
		f.at("12:00"), f.at("13:00"), "lunch", f.manager())
	require.ErrorIs(t, err, ErrSlotUnavailable)
}
