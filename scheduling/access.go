package scheduling

import (
	"context"

	"github.com/google/uuid"
)

// Actor roles, strongest first.
const (
	RoleSuperAdmin   = "super_admin"
	RoleCompanyAdmin = "company_admin"
	RoleSalonManager = "salon_manager"
	RoleEmployee     = "employee"
)

// Actor is the authenticated identity behind a request. Only the id
// matching the role is meaningful: CompanyID for company admins, SalonID
// for salon managers, SalonID+EmployeeID for employees.
type Actor struct {
	UserID     uuid.UUID
	Role       string
	CompanyID  uuid.UUID
	SalonID    uuid.UUID
	EmployeeID uuid.UUID
}

// Guard is the single permission gate for every scheduling operation.
// Decisions are binary and evaluated per request; nothing is cached.
type Guard struct {
	store Store
}

func NewGuard(store Store) *Guard {
	return &Guard{store: store}
}

// CanAccess reports whether the actor may read or mutate the calendar of
// the given employee in the given salon. On deny it returns
// ErrPermissionDenied and the operation must not be attempted.
// CanAccess runs the guard without performing any operation. Read
// endpoints call it before touching the ledger so one tenant can never
// list another's calendar.
func (s *Scheduler) CanAccess(ctx context.Context, actor Actor, salonID, employeeID uuid.UUID) error {
	return s.guard.CanAccess(ctx, actor, salonID, employeeID)
}

func (g *Guard) CanAccess(ctx context.Context, actor Actor, salonID, employeeID uuid.UUID) error {
	switch actor.Role {
	case RoleSuperAdmin:
		return nil
	case RoleCompanyAdmin:
		companyID, err := g.store.SalonCompany(ctx, salonID)
		if err != nil {
			return err
		}
		if companyID == actor.CompanyID {
			return nil
		}
	case RoleSalonManager:
		if actor.SalonID == salonID {
			return nil
		}
	case RoleEmployee:
		// Employees touch only their own calendar, never a colleague's.
		if actor.SalonID == salonID && actor.EmployeeID == employeeID {
			return nil
		}
	}
	return ErrPermissionDenied
}
