// controllers/user.go
package controllers

import (
	"errors"
	"net/http"

	"salondesk-backend/config"
	"salondesk-backend/models"
	"salondesk-backend/scheduling"
	"salondesk-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AddUserInput defines the expected JSON structure for provisioning a
// staff account
type AddUserInput struct {
	Name       string  `json:"name" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Phone      string  `json:"phone" binding:"required"`
	Password   string  `json:"password" binding:"required,min=8"`
	Role       string  `json:"role" binding:"required"`
	EmployeeID *string `json:"employeeId"`
}

// AddUser creates a salon_manager or employee login for the salon.
// Registration only ever mints the company admin; every other account
// comes through here.
func AddUser(c *gin.Context) {
	actor := actorFromContext(c)
	if actor.Role != scheduling.RoleCompanyAdmin && actor.Role != scheduling.RoleSalonManager {
		utils.RespondWithError(c, http.StatusForbidden, "You do not have permission for this operation")
		return
	}

	var input AddUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Role != scheduling.RoleSalonManager && input.Role != scheduling.RoleEmployee {
		utils.RespondWithError(c, http.StatusBadRequest, "Role must be salon_manager or employee")
		return
	}

	salonID, exists := c.Get("salonId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Salon ID not found in context")
		return
	}
	salonUUID, err := uuid.Parse(salonID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid salon ID format")
		return
	}

	var salon models.Salon
	if err := config.DB.First(&salon, "id = ?", salonUUID).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	// Employee accounts must point at a real employee of this salon.
	var employeeID *uuid.UUID
	if input.Role == scheduling.RoleEmployee {
		if input.EmployeeID == nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Employee ID is required for employee accounts")
			return
		}
		id, err := uuid.Parse(*input.EmployeeID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid employee ID format")
			return
		}
		var employee models.Employee
		if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, id).
			First(&employee).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusNotFound, "Employee not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
		employeeID = &id
	}

	var existingUser models.User
	result := config.DB.Where("email = ? OR phone = ?", input.Email, input.Phone).First(&existingUser)
	if result.Error == nil {
		utils.RespondWithError(c, http.StatusConflict, "Email or phone already registered")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	user := models.User{
		Email:      input.Email,
		Phone:      input.Phone,
		Name:       input.Name,
		Password:   input.Password, // Will be hashed in BeforeCreate hook
		Role:       input.Role,
		CompanyID:  &salon.CompanyID,
		SalonID:    &salonUUID,
		EmployeeID: employeeID,
		IsActive:   true,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user": gin.H{
			"id":         user.ID,
			"email":      user.Email,
			"name":       user.Name,
			"role":       user.Role,
			"salonId":    user.SalonID,
			"employeeId": user.EmployeeID,
		},
	})
}

// GetUsers lists the salon's staff accounts
func GetUsers(c *gin.Context) {
	actor := actorFromContext(c)
	if actor.Role != scheduling.RoleCompanyAdmin && actor.Role != scheduling.RoleSalonManager {
		utils.RespondWithError(c, http.StatusForbidden, "You do not have permission for this operation")
		return
	}

	salonID, exists := c.Get("salonId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Salon ID not found in context")
		return
	}
	salonUUID, err := uuid.Parse(salonID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid salon ID format")
		return
	}

	var users []models.User
	if err := config.DB.Where("salon_id = ?", salonUUID).Order("name").Find(&users).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve users")
		return
	}

	c.JSON(http.StatusOK, users)
}
