// storage/clients.go
package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"salondesk-backend/models"
	"salondesk-backend/scheduling"
)

// GormClientResolver finds-or-creates booking clients: phone match first,
// email second, both scoped to the salon.
type GormClientResolver struct {
	db *gorm.DB
}

func NewGormClientResolver(db *gorm.DB) *GormClientResolver {
	return &GormClientResolver{db: db}
}

func (r *GormClientResolver) Resolve(ctx context.Context, salonID uuid.UUID, in scheduling.ClientInput) (*models.Client, error) {
	var client models.Client

	if in.Phone != "" {
		err := r.db.WithContext(ctx).
			Where("salon_id = ? AND phone = ?", salonID, in.Phone).
			First(&client).Error
		if err == nil {
			return &client, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if in.Email != "" {
		err := r.db.WithContext(ctx).
			Where("salon_id = ? AND LOWER(email) = LOWER(?)", salonID, in.Email).
			First(&client).Error
		if err == nil {
			return &client, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	client = models.Client{
		ID:       uuid.New(),
		SalonID:  salonID,
		Name:     in.Name,
		Phone:    in.Phone,
		Email:    in.Email,
		IsActive: true,
	}
	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}
