package scheduling

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"salondesk-backend/models"
)

// MemoryStore is a deterministic in-memory Store and ClientResolver used
// by the test suite and local development. The Fail* fields inject a
// storage error into the next matching call, which is how the
// compensation path is exercised.
type MemoryStore struct {
	mu           sync.Mutex
	slots        map[uuid.UUID]models.Slot
	appointments map[uuid.UUID]models.Appointment
	services     map[uuid.UUID]models.Service
	clients      map[uuid.UUID]models.Client
	salonOwner   map[uuid.UUID]uuid.UUID

	FailCreateSlot        error
	FailCreateAppointment error
	FailDeleteAppointment error
	FailUpdateSlot        error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		slots:        map[uuid.UUID]models.Slot{},
		appointments: map[uuid.UUID]models.Appointment{},
		services:     map[uuid.UUID]models.Service{},
		clients:      map[uuid.UUID]models.Client{},
		salonOwner:   map[uuid.UUID]uuid.UUID{},
	}
}

// Seed helpers ----------------------------------------------------------

func (m *MemoryStore) AddSalon(salonID, companyID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.salonOwner[salonID] = companyID
}

func (m *MemoryStore) AddService(svc models.Service) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.services[svc.ID] = svc
}

// Store ----------------------------------------------------------------

func (m *MemoryStore) ListBusySlots(ctx context.Context, salonID, employeeID uuid.UUID, date string) ([]models.Slot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Slot{}
	for _, slot := range m.slots {
		if slot.SalonID == salonID && slot.EmployeeID == employeeID && slot.Date == date && slot.IsBusy() {
			out = append(out, slot)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out, nil
}

func (m *MemoryStore) GetSlot(ctx context.Context, slotID uuid.UUID) (*models.Slot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	slot, ok := m.slots[slotID]
	if !ok {
		return nil, ErrSlotNotFound
	}
	return &slot, nil
}

func (m *MemoryStore) CreateSlot(ctx context.Context, slot *models.Slot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailCreateSlot != nil {
		err := m.FailCreateSlot
		m.FailCreateSlot = nil
		return err
	}
	m.slots[slot.ID] = *slot
	return nil
}

func (m *MemoryStore) UpdateSlot(ctx context.Context, slot *models.Slot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailUpdateSlot != nil {
		err := m.FailUpdateSlot
		m.FailUpdateSlot = nil
		return err
	}
	if _, ok := m.slots[slot.ID]; !ok {
		return ErrSlotNotFound
	}
	m.slots[slot.ID] = *slot
	return nil
}

func (m *MemoryStore) DeleteSlot(ctx context.Context, slotID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.slots, slotID)
	return nil
}

func (m *MemoryStore) GetService(ctx context.Context, salonID, serviceID uuid.UUID) (*models.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	svc, ok := m.services[serviceID]
	if !ok || svc.SalonID != salonID {
		return nil, ErrServiceNotFound
	}
	return &svc, nil
}

func (m *MemoryStore) CreateAppointment(ctx context.Context, appt *models.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailCreateAppointment != nil {
		err := m.FailCreateAppointment
		m.FailCreateAppointment = nil
		return err
	}
	m.appointments[appt.ID] = *appt
	return nil
}

func (m *MemoryStore) DeleteAppointment(ctx context.Context, apptID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailDeleteAppointment != nil {
		err := m.FailDeleteAppointment
		m.FailDeleteAppointment = nil
		return err
	}
	delete(m.appointments, apptID)
	return nil
}

func (m *MemoryStore) UpdateAppointmentStatus(ctx context.Context, apptID uuid.UUID, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	appt, ok := m.appointments[apptID]
	if !ok {
		return ErrApptNotFound
	}
	appt.Status = status
	m.appointments[apptID] = appt
	return nil
}

func (m *MemoryStore) RecordClientVisit(ctx context.Context, clientID uuid.UUID, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cl, ok := m.clients[clientID]
	if !ok {
		return ErrClientNotFound
	}
	cl.TotalVisits++
	visit := at
	cl.LastVisit = &visit
	m.clients[clientID] = cl
	return nil
}

func (m *MemoryStore) SalonCompany(ctx context.Context, salonID uuid.UUID) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	owner, ok := m.salonOwner[salonID]
	if !ok {
		return uuid.Nil, ErrSalonNotFound
	}
	return owner, nil
}

// ClientResolver --------------------------------------------------------

func (m *MemoryStore) Resolve(ctx context.Context, salonID uuid.UUID, in ClientInput) (*models.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, cl := range m.clients {
		if cl.SalonID != salonID {
			continue
		}
		if in.Phone != "" && cl.Phone == in.Phone {
			return &cl, nil
		}
		if in.Email != "" && strings.EqualFold(cl.Email, in.Email) {
			return &cl, nil
		}
	}
	cl := models.Client{
		ID:       uuid.New(),
		SalonID:  salonID,
		Name:     in.Name,
		Phone:    in.Phone,
		Email:    in.Email,
		IsActive: true,
	}
	m.clients[cl.ID] = cl
	return &cl, nil
}

// Inspection helpers for tests ------------------------------------------

func (m *MemoryStore) Appointment(apptID uuid.UUID) (models.Appointment, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	appt, ok := m.appointments[apptID]
	return appt, ok
}

func (m *MemoryStore) AppointmentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.appointments)
}

func (m *MemoryStore) Slot(slotID uuid.UUID) (models.Slot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	slot, ok := m.slots[slotID]
	return slot, ok
}

func (m *MemoryStore) Client(clientID uuid.UUID) (models.Client, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cl, ok := m.clients[clientID]
	return cl, ok
}

func (m *MemoryStore) SlotCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.slots)
}
