package scheduling

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"salondesk-backend/models"
)

func TestRescheduleMovesSlot(t *testing.T) {
	f := newFixture(t)
	slot := f.seedReserved(t, "10:00:00", "10:30:00")

	prev, err := f.sched.Reschedule(context.Background(), slot.ID,
		f.at("14:00"), f.at("14:30"), f.manager())
	require.NoError(t, err)

	require.Equal(t, Window{Date: "2025-01-10", Start: "10:00:00", End: "10:30:00"}, prev)

	moved, ok := f.store.Slot(slot.ID)
	require.True(t, ok)
	require.Equal(t, "14:00:00", moved.StartTime)
	require.Equal(t, "14:30:00", moved.EndTime)
	require.Equal(t, models.SlotReserved, moved.State)
	require.Equal(t, slot.AppointmentID, moved.AppointmentID)
}

func TestRescheduleReRunsConflictCheck(t *testing.T) {
	f := newFixture(t)
	slot := f.seedReserved(t, "10:00:00", "10:30:00")
	f.seedReserved(t, "14:00:00", "14:45:00")

	prev, err := f.sched.Reschedule(context.Background(), slot.ID,
		f.at("14:15"), f.at("14:45"), f.manager())
	require.ErrorIs(t, err, ErrSlotUnavailable)

	// The prior window comes back so the caller can revert an
	// optimistic drag.
	require.Equal(t, "10:00:00", prev.Start)

	unchanged, ok := f.store.Slot(slot.ID)
	require.True(t, ok)
	require.Equal(t, "10:00:00", unchanged.StartTime)
}

func TestRescheduleExcludesItselfFromConflictCheck(t *testing.T) {
	f := newFixture(t)
	slot := f.seedReserved(t, "10:00:00", "10:30:00")

	// Resizing within its own window must not self-conflict.
	_, err := f.sched.Reschedule(context.Background(), slot.ID,
		f.at("10:00"), f.at("11:00"), f.manager())
	require.NoError(t, err)

	resized, ok := f.store.Slot(slot.ID)
	require.True(t, ok)
	require.Equal(t, "11:00:00", resized.EndTime)
}

func TestRescheduleUnknownSlot(t *testing.T) {
	f := newFixture(t)

	_, err := f.sched.Reschedule(context.Background(), uuid.New(),
		f.at("14:00"), f.at("14:30"), f.manager())
	require.ErrorIs(t, err, ErrSlotNotFound)
}

func TestRescheduleValidation(t *testing.T) {
	f := newFixture(t)
	slot := f.seedReserved(t, "10:00:00", "10:30:00")

	// End before start.
	_, err := f.sched.Reschedule(context.Background(), slot.ID,
		f.at("14:30"), f.at("14:00"), f.manager())
	require.ErrorIs(t, err, ErrValidation)
}

func TestReschedulePropagatesStoreError(t *testing.T) {
	f := newFixture(t)
	slot := f.seedReserved(t, "10:00:00", "10:30:00")
	f.store.FailUpdateSlot = errors.New("connection reset")

	prev, err := f.sched.Reschedule(context.Background(), slot.ID,
		f.at("14:00"), f.at("14:30"), f.manager())
	require.Error(t, err)
	require.Equal(t, "10:00:00", prev.Start)

	unchanged, ok := f.store.Slot(slot.ID)
	require.True(t, ok)
	require.Equal(t, "10:00:00", unchanged.StartTime)
}

func TestRescheduleDeniedForForeignSalonManager(t *testing.T) {
	f := newFixture(t)
	slot := f.seedReserved(t, "10:00:00", "10:30:00")

	foreign := Actor{UserID: uuid.New(), Role: RoleSalonManager, SalonID: uuid.New()}
	_, err := f.sched.Reschedule(context.Background(), slot.ID,
		f.at("14:00"), f.at("14:30"), foreign)
	require.ErrorIs(t, err, ErrPermissionDenied)
}
