// controllers/appointment.go
package controllers

import (
	"net/http"
	"time"

	"salondesk-backend/scheduling"
	"salondesk-backend/services"
	"salondesk-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BookAppointmentInput defines the expected JSON structure for booking
type BookAppointmentInput struct {
	SalonID     string    `json:"salonId" binding:"required"`
	EmployeeID  string    `json:"employeeId" binding:"required"`
	ServiceID   string    `json:"serviceId" binding:"required"`
	ClientName  string    `json:"clientName" binding:"required"`
	ClientPhone string    `json:"clientPhone"`
	ClientEmail string    `json:"clientEmail"`
	StartTime   time.Time `json:"startTime" binding:"required"`
	Source      string    `json:"source"`
}

// BookAppointment creates an appointment and reserves its slot
func BookAppointment(c *gin.Context) {
	var input BookAppointmentInput
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
	serviceUUID, err := uuid.Parse(input.ServiceID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	if input.ClientPhone != "" && !utils.ValidatePhone(input.ClientPhone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	source := input.Source
	if source == "" {
		source = "staff"
	}

	appt, err := Core.Book(c.Request.Context(), scheduling.BookingRequest{
		SalonID:    salonUUID,
		EmployeeID: employeeUUID,
		ServiceID:  serviceUUID,
		Client: scheduling.ClientInput{
			Name:  input.ClientName,
			Phone: input.ClientPhone,
			Email: input.ClientEmail,
		},
		Start:  input.StartTime,
		Source: source,
	}, actorFromContext(c))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	// Confirmation SMS is best-effort and never blocks the response.
	go services.Notify.BookingConfirmed(appt)

	c.JSON(http.StatusCreated, appt)
}
