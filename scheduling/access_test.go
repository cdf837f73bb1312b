package scheduling

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// The full (role, ownership) matrix: exactly the documented combinations
// pass, everything else is denied.
func TestGuardMatrix(t *testing.T) {
	f := newFixture(t)

	otherCompany := uuid.New()
	otherSalon := uuid.New()
	f.store.AddSalon(otherSalon, otherCompany)
	otherEmp := uuid.New()

	cases := []struct {
		name    string
		actor   Actor
		salon   uuid.UUID
		emp     uuid.UUID
		allowed bool
	}{
		{"super admin, any salon", Actor{Role: RoleSuperAdmin}, f.salonID, f.empID, true},
		{"super admin, other tenant", Actor{Role: RoleSuperAdmin}, otherSalon, otherEmp, true},

		{"company admin, owned salon", Actor{Role: RoleCompanyAdmin, CompanyID: f.companyID}, f.salonID, f.empID, true},
		{"company admin, foreign salon", Actor{Role: RoleCompanyAdmin, CompanyID: f.companyID}, otherSalon, otherEmp, false},

		{"salon manager, own salon", Actor{Role: RoleSalonManager, SalonID: f.salonID}, f.salonID, f.empID, true},
		{"salon manager, other salon", Actor{Role: RoleSalonManager, SalonID: f.salonID}, otherSalon, otherEmp, false},

		{"employee, own calendar", Actor{Role: RoleEmployee, SalonID: f.salonID, EmployeeID: f.empID}, f.salonID, f.empID, true},
		{"employee, colleague calendar", Actor{Role: RoleEmployee, SalonID: f.salonID, EmployeeID: f.empID}, f.salonID, otherEmp, false},
		{"employee, other salon", Actor{Role: RoleEmployee, SalonID: f.salonID, EmployeeID: f.empID}, otherSalon, f.empID, false},

		{"unknown role", Actor{Role: "intern"}, f.salonID, f.empID, false},
		{"empty actor", Actor{}, f.salonID, f.empID, false},
	}

	guard := NewGuard(f.store)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.actor.UserID = uuid.New()
			err := guard.CanAccess(context.Background(), tc.actor, tc.salon, tc.emp)
			if tc.allowed {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrPermissionDenied)
			}
		})
	}
}

func TestGuardDenialPreventsWrites(t *testing.T) {
	f := newFixture(t)

	employee := Actor{UserID: uuid.New(), Role: RoleEmployee, SalonID: f.salonID, EmployeeID: uuid.New()}

	// Booking a colleague's calendar never reaches the store.
	req := bookingReq(f, "10:00")
	_, err := f.sched.Book(context.Background(), req, employee)
	require.ErrorIs(t, err, ErrPermissionDenied)
	require.Equal(t, 0, f.store.AppointmentCount())
	require.Equal(t, 0, f.store.SlotCount())

	_, err = f.sched.Block(context.Background(), f.salonID, f.empID,
		f.at("12:00"), f.at("13:00"), "lunch", employee)
	require.ErrorIs(t, err, ErrPermissionDenied)
	require.Equal(t, 0, f.store.SlotCount())
}

func TestGuardSurfacesUnknownSalon(t *testing.T) {
	f := newFixture(t)

	admin := Actor{UserID: uuid.New(), Role: RoleCompanyAdmin, CompanyID: f.companyID}
	err := NewGuard(f.store).CanAccess(context.Background(), admin, uuid.New(), f.empID)
	require.ErrorIs(t, err, ErrSalonNotFound)
}
