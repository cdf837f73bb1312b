// controllers/slot.go
package controllers

import (
	"net/http"
	"time"

	"salondesk-backend/config"
	"salondesk-backend/models"
	"salondesk-backend/services"
	"salondesk-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetSlots returns one employee's ledger for a date: reserved and blocked
// entries, the raw material for a day calendar.
func GetSlots(c *gin.Context) {
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
	if _, err := time.Parse(models.SlotDateLayout, date); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	if err := Core.CanAccess(c.Request.Context(), actorFromContext(c), salonUUID, employeeUUID); err != nil {
		respondSchedulingError(c, err)
		return
	}

	slots, err := Core.Store().ListBusySlots(c.Request.Context(), salonUUID, employeeUUID, date)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve slots")
		return
	}

	c.JSON(http.StatusOK, slots)
}

// RescheduleSlotInput defines the expected JSON structure for a move/resize
type RescheduleSlotInput struct {
	NewStart time.Time `json:"newStart" binding:"required"`
	NewEnd   time.Time `json:"newEnd" binding:"required"`
}

// RescheduleSlot moves a slot to a new window after re-running the
// conflict check. The previous window is echoed back so the client can
// revert an optimistic drag on failure.
func RescheduleSlot(c *gin.Context) {
	slotUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid slot ID format")
		return
	}

	var input RescheduleSlotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	prev, err := Core.Reschedule(c.Request.Context(), slotUUID, input.NewStart, input.NewEnd, actorFromContext(c))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Slot rescheduled successfully",
		"previousWindow": prev,
	})
}

// CancelSlot releases a reserved slot (appointment marked cancelled) or
// removes a manual block.
func CancelSlot(c *gin.Context) {
	slotUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid slot ID format")
		return
	}

	// Remember the appointment link before the core clears it.
	var apptID *uuid.UUID
	if slot, err := Core.Store().GetSlot(c.Request.Context(), slotUUID); err == nil {
		apptID = slot.AppointmentID
	}

	if err := Core.Cancel(c.Request.Context(), slotUUID, actorFromContext(c)); err != nil {
		respondSchedulingError(c, err)
		return
	}

	if apptID != nil {
		var appt models.Appointment
		if err := config.DB.First(&appt, "id = ?", *apptID).Error; err == nil {
			go services.Notify.BookingCancelled(&appt)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Slot cancelled successfully"})
}

// BlockSlotInput defines the expected JSON structure for a manual block
type BlockSlotInput struct {
	SalonID    string    `json:"salonId" binding:"required"`
	EmployeeID string    `json:"employeeId" binding:"required"`
	Start      time.Time `json:"start" binding:"required"`
	End        time.Time `json:"end" binding:"required"`
	Reason     string    `json:"reason"`
}

// BlockSlot reserves non-client time on an employee's calendar
func BlockSlot(c *gin.Context) {
	var input BlockSlotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	salonUUID, err := uuid.Parse(input.SalonID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID format")
		return
	}
	employeeUUID, err := uuid.Parse(input.EmployeeID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid employee ID format")
		return
	}

	slot, err := Core.Block(c.Request.Context(), salonUUID, employeeUUID, input.Start, input.End, input.Reason, actorFromContext(c))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, slot)
}
