// controllers/barber.go
package controllers

import (
	"errors"
	"net/http"
	"strings"

	"salonflow-backend/config"
	"salonflow-backend/models"
	"salonflow-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateBarberInput defines the expected JSON structure for creating a barber
type CreateBarberInput struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required,min=6"`
	AvatarURL string `json:"avatarUrl"`
}

// UpdateBarberInput defines the expected JSON structure for updating a barber
type UpdateBarberInput struct {
	Username  *string `json:"username"`
	Password  *string `json:"password" binding:"omitempty,min=6"`
	AvatarURL *string `json:"avatarUrl"`
	IsActive  *bool   `json:"isActive"`
}

// CreateBarber provisions a new barber account. The email address is derived
// from the username, matching the per-barber credential scheme.
func CreateBarber(c *gin.Context) {
	var input CreateBarberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	email := strings.ToLower(strings.ReplaceAll(input.Username, " ", "")) + "@salonflow.com"

	var existing models.User
	result := config.DB.Where("username = ? OR email = ?", input.Username, email).First(&existing)
	if result.Error == nil {
		utils.RespondWithError(c, http.StatusConflict, "Username already taken")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	barber := models.User{
		Username:  input.Username,
		Email:     email,
		Password:  input.Password, // hashed in BeforeCreate hook
		Role:      models.RoleBarber,
		AvatarURL: input.AvatarURL,
		IsActive:  true,
	}

	if err := config.DB.Create(&barber).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create barber")
		return
	}

	c.JSON(http.StatusCreated, barber)
}

// GetBarbers retrieves all barbers, ordered by username
func GetBarbers(c *gin.Context) {
	var barbers []models.User
	if err := config.DB.Where("role = ?", models.RoleBarber).
		Order("username asc").
		Find(&barbers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve barbers")
		return
	}

	c.JSON(http.StatusOK, barbers)
}

// GetBarber retrieves a specific barber by ID
func GetBarber(c *gin.Context) {
	barberUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid barber ID format")
		return
	}

	var barber models.User
	if err := config.DB.Where("id = ? AND role = ?", barberUUID, models.RoleBarber).
		First(&barber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Barber not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, barber)
}

// UpdateBarber updates a barber's username, password or avatar. Role is
// immutable through the API.
func UpdateBarber(c *gin.Context) {
	barberUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid barber ID format")
		return
	}

	var input UpdateBarberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var barber models.User
	if err := config.DB.Where("id = ? AND role = ?", barberUUID, models.RoleBarber).
		First(&barber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Barber not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Username != nil && *input.Username != barber.Username {
		var existing models.User
		if err := config.DB.Where("username = ? AND id <> ?", *input.Username, barber.ID).
			First(&existing).Error; err == nil {
			utils.RespondWithError(c, http.StatusConflict, "Username already taken")
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
		barber.Username = *input.Username
	}
	if input.Password != nil && *input.Password != "" {
		hashed, err := utils.HashPassword(*input.Password)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update password")
			return
		}
		barber.Password = hashed
	}
	if input.AvatarURL != nil {
		barber.AvatarURL = *input.AvatarURL
	}
	if input.IsActive != nil {
		barber.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&barber).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update barber")
		return
	}

	c.JSON(http.StatusOK, barber)
}

// DeleteBarber removes a barber account. Existing service logs keep their
// barber id; reports resolve them as "Unknown" from then on.
func DeleteBarber(c *gin.Context) {
	barberUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid barber ID format")
		return
	}

	result := config.DB.Where("id = ? AND role = ?", barberUUID, models.RoleBarber).
		Delete(&models.User{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete barber")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Barber not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Barber deleted successfully"})
}
