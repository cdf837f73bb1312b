// controllers/availability.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"salondesk-backend/config"
	"salondesk-backend/models"
	"salondesk-backend/scheduling"
	"salondesk-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bookable horizon; availability past this is never offered.
const maxAdvanceDays = 90

// GetAvailability returns the open start times for one employee on one
// date, on the 15-minute grid, given the salon's working hours for that
// weekday.
func GetAvailability(c *gin.Context) {
	salonUUID, err := uuid.Parse(c.Query("salonId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID format")
		return
	}
	employeeUUID, err := uuid.Parse(c.Query("employeeId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid employee ID format")
		return
	}
	date := c.Query("date")
	day, err := time.Parse(models.SlotDateLayout, date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}
	if utils.DaysBetween(time.Now(), day) > maxAdvanceDays {
		utils.RespondWithError(c, http.StatusBadRequest, "Date is too far in the future")
		return
	}
	duration, err := strconv.Atoi(c.Query("durationMinutes"))
	if err != nil || duration <= 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid duration")
		return
	}

	// Availability is a read, but a foreign tenant's gaps are still a
	// leak; run the same gate as the mutating operations.
	if err := Core.CanAccess(c.Request.Context(), actorFromContext(c), salonUUID, employeeUUID); err != nil {
		respondSchedulingError(c, err)
		return
	}

	var salon models.Salon
	if err := config.DB.First(&salon, "id = ?", salonUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Salon not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	dayStart, dayEnd, open := workingWindow(salon.WorkingHours, date)
	if !open {
		c.JSON(http.StatusOK, gin.H{"date": date, "times": []string{}})
		return
	}

	times, err := Core.ComputeAvailability(c.Request.Context(), scheduling.AvailabilityRequest{
		SalonID:         salonUUID,
		EmployeeID:      employeeUUID,
		Date:            date,
		DurationMinutes: duration,
		DayStart:        dayStart,
		DayEnd:          dayEnd,
	})
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": date, "times": times})
}

// workingWindow reads the salon's per-weekday hours JSONB for the given
// date. Defaults to 09:00-20:00 when the weekday entry is missing.
func workingWindow(hours models.JSONB, date string) (string, string, bool) {
	day, err := time.Parse(models.SlotDateLayout, date)
	if err != nil {
		return "", "", false
	}
	weekday := strings.ToLower(day.Weekday().String())

	entry, ok := hours[weekday].(map[string]interface{})
	if !ok {
		return "09:00", "20:00", true
	}
	if closed, ok := entry["closed"].(bool); ok && closed {
		return "", "", false
	}
	open, _ := entry["open"].(string)
	closeAt, _ := entry["close"].(string)
	if open == "" || closeAt == "" {
		return "09:00", "20:00", true
	}
	return open, closeAt, true
}
