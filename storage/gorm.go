// storage/gorm.go
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"salondesk-backend/models"
	"salondesk-backend/scheduling"
)

// GormStore is the production scheduling.Store on Postgres. Every query
// carries the salon id so one tenant can never see another's ledger.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (g *GormStore) ListBusySlots(ctx context.Context, salonID, employeeID uuid.UUID, date string) ([]models.Slot, error) {
	var slots []models.Slot
	err := g.db.WithContext(ctx).
		Where("salon_id = ? AND employee_id = ? AND date = ? AND state IN ?",
			salonID, employeeID, date, []string{models.SlotReserved, models.SlotBlocked}).
		Order("start_time").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (g *GormStore) GetSlot(ctx context.Context, slotID uuid.UUID) (*models.Slot, error) {
	var slot models.Slot
	if err := g.db.WithContext(ctx).First(&slot, "id = ?", slotID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, scheduling.ErrSlotNotFound
		}
		return nil, err
	}
	return &slot, nil
}

func (g *GormStore) CreateSlot(ctx context.Context, slot *models.Slot) error {
	return g.db.WithContext(ctx).Create(slot).Error
}

func (g *GormStore) UpdateSlot(ctx context.Context, slot *models.Slot) error {
	// Save would skip zero values; cancellation clears linkage fields,
	// so write the mutable columns explicitly.
	result := g.db.WithContext(ctx).Model(&models.Slot{}).
		Where("id = ?", slot.ID).
		Updates(map[string]interface{}{
			"date":           slot.Date,
			"start_time":     slot.StartTime,
			"end_time":       slot.EndTime,
			"state":          slot.State,
			"appointment_id": slot.AppointmentID,
			"client_id":      slot.ClientID,
			"client_name":    slot.ClientName,
			"service_id":     slot.ServiceID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return scheduling.ErrSlotNotFound
	}
	return nil
}

func (g *GormStore) DeleteSlot(ctx context.Context, slotID uuid.UUID) error {
	return g.db.WithContext(ctx).Delete(&models.Slot{}, "id = ?", slotID).Error
}

func (g *GormStore) GetService(ctx context.Context, salonID, serviceID uuid.UUID) (*models.Service, error) {
	var service models.Service
	err := g.db.WithContext(ctx).
		Where("salon_id = ? AND id = ?", salonID, serviceID).
		First(&service).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, scheduling.ErrServiceNotFound
		}
		return nil, err
	}
	return &service, nil
}

func (g *GormStore) CreateAppointment(ctx context.Context, appt *models.Appointment) error {
	return g.db.WithContext(ctx).Create(appt).Error
}

func (g *GormStore) DeleteAppointment(ctx context.Context, apptID uuid.UUID) error {
	return g.db.WithContext(ctx).Delete(&models.Appointment{}, "id = ?", apptID).Error
}

func (g *GormStore) UpdateAppointmentStatus(ctx context.Context, apptID uuid.UUID, status string) error {
	result := g.db.WithContext(ctx).Model(&models.Appointment{}).
		Where("id = ?", apptID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return scheduling.ErrApptNotFound
	}
	return nil
}

func (g *GormStore) RecordClientVisit(ctx context.Context, clientID uuid.UUID, at time.Time) error {
	result := g.db.WithContext(ctx).Model(&models.Client{}).
		Where("id = ?", clientID).
		Updates(map[string]interface{}{
			"total_visits": gorm.Expr("total_visits + 1"),
			"last_visit":   at,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return scheduling.ErrClientNotFound
	}
	return nil
}

func (g *GormStore) SalonCompany(ctx context.Context, salonID uuid.UUID) (uuid.UUID, error) {
	var salon models.Salon
	err := g.db.WithContext(ctx).Select("id", "company_id").
		First(&salon, "id = ?", salonID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, scheduling.ErrSalonNotFound
		}
		return uuid.Nil, err
	}
	return salon.CompanyID, nil
}
