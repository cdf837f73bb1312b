// controllers/scheduling.go
package controllers

import (
	"errors"
	"net/http"

	"salondesk-backend/scheduling"
	"salondesk-backend/storage"
	"salondesk-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Core is the scheduling engine behind every calendar endpoint. Wired
// once from main.
var Core *scheduling.Scheduler

func InitScheduling(db *gorm.DB) {
	Core = scheduling.NewScheduler(storage.NewGormStore(db), storage.NewGormClientResolver(db))
}

// respondSchedulingError maps the core's error taxonomy onto HTTP codes.
func respondSchedulingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, scheduling.ErrValidation):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, scheduling.ErrSlotUnavailable):
		utils.RespondWithError(c, http.StatusConflict, "Requested time is no longer available")
	case errors.Is(err, scheduling.ErrPermissionDenied):
		utils.RespondWithError(c, http.StatusForbidden, "You do not have permission for this operation")
	case errors.Is(err, scheduling.ErrSlotNotFound),
		errors.Is(err, scheduling.ErrServiceNotFound),
		errors.Is(err, scheduling.ErrSalonNotFound),
		errors.Is(err, scheduling.ErrApptNotFound),
		errors.Is(err, scheduling.ErrClientNotFound):
		utils.RespondWithError(c, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
	}
}

// actorFromContext rebuilds the scheduling actor from the JWT claims the
// auth middleware put on the context. Missing or foreign-role claims
// parse to uuid.Nil, which the guard denies.
func actorFromContext(c *gin.Context) scheduling.Actor {
	claim := func(key string) uuid.UUID {
		v, exists := c.Get(key)
		if !exists {
			return uuid.Nil
		}
		s, ok := v.(string)
		if !ok {
			return uuid.Nil
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil
		}
		return id
	}

	role := ""
	if v, exists := c.Get("role"); exists {
		if s, ok := v.(string); ok {
			role = s
		}
	}

	return scheduling.Actor{
		UserID:     claim("userId"),
		Role:       role,
		CompanyID:  claim("companyId"),
		SalonID:    claim("salonId"),
		EmployeeID: claim("employeeId"),
	}
}
