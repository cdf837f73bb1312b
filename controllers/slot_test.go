package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"salondesk-backend/models"
	"salondesk-backend/scheduling"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ledgerFixture wires the scheduling core to an in-memory store with one
// salon and one reserved slot carrying a client name.
type ledgerFixture struct {
	salonID uuid.UUID
	empID   uuid.UUID
	slotID  uuid.UUID
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()

	f := &ledgerFixture{
		salonID: uuid.New(),
		empID:   uuid.New(),
		slotID:  uuid.New(),
	}
	mem := scheduling.NewMemoryStore()
	mem.AddSalon(f.salonID, uuid.New())

	apptID := uuid.New()
	require.NoError(t, mem.CreateSlot(context.Background(), &models.Slot{
		ID:            f.slotID,
		SalonID:       f.salonID,
		EmployeeID:    f.empID,
		Date:          "2025-01-10",
		StartTime:     "10:00:00",
		EndTime:       "10:30:00",
		State:         models.SlotReserved,
		AppointmentID: &apptID,
		ClientName:    "Dana",
	}))

	Core = scheduling.NewScheduler(mem, mem)
	return f
}

func requestWithClaims(t *testing.T, target string, claims map[string]string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range claims {
		c.Set(k, v)
	}
	return c, w
}

func managerClaims(salonID uuid.UUID) map[string]string {
	return map[string]string{
		"userId":  uuid.New().String(),
		"role":    scheduling.RoleSalonManager,
		"salonId": salonID.String(),
	}
}

func TestGetSlotsDeniesForeignSalonManager(t *testing.T) {
	f := newLedgerFixture(t)

	target := "/api/slots?salonId=" + f.salonID.String() +
		"&employeeId=" + f.empID.String() + "&date=2025-01-10"
	c, w := requestWithClaims(t, target, managerClaims(uuid.New()))

	GetSlots(c)

	require.Equal(t, http.StatusForbidden, w.Code)
	require.NotContains(t, w.Body.String(), "Dana")
}

func TestGetSlotsReturnsOwnSalonLedger(t *testing.T) {
	f := newLedgerFixture(t)

	target := "/api/slots?salonId=" + f.salonID.String() +
		"&employeeId=" + f.empID.String() + "&date=2025-01-10"
	c, w := requestWithClaims(t, target, managerClaims(f.salonID))

	GetSlots(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Dana")
}

func TestGetSlotsDeniesEmployeeViewingColleague(t *testing.T) {
	f := newLedgerFixture(t)

	target := "/api/slots?salonId=" + f.salonID.String() +
		"&employeeId=" + f.empID.String() + "&date=2025-01-10"
	c, w := requestWithClaims(t, target, map[string]string{
		"userId":     uuid.New().String(),
		"role":       scheduling.RoleEmployee,
		"salonId":    f.salonID.String(),
		"employeeId": uuid.New().String(),
	})

	GetSlots(c)

	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetAvailabilityDeniesForeignSalonManager(t *testing.T) {
	f := newLedgerFixture(t)

	target := "/api/availability?salonId=" + f.salonID.String() +
		"&employeeId=" + f.empID.String() + "&date=2025-01-10&durationMinutes=30"
	c, w := requestWithClaims(t, target, managerClaims(uuid.New()))

	GetAvailability(c)

	require.Equal(t, http.StatusForbidden, w.Code)
}
