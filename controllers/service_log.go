// controllers/service_log.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"salonflow-backend/config"
	"salonflow-backend/models"
	"salonflow-backend/services"
	"salonflow-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ServiceLogItemInput is one entry in a batch submission. Price overrides
// the service's catalog price when provided.
type ServiceLogItemInput struct {
	ServiceID uuid.UUID `json:"serviceId" binding:"required"`
	Price     *float64  `json:"price" binding:"omitempty,min=0"`
}

// CreateServiceLogsInput defines the expected JSON structure for logging services.
// BarberID is only honoured for managers logging on a barber's behalf.
type CreateServiceLogsInput struct {
	BarberID *uuid.UUID            `json:"barberId"`
	Items    []ServiceLogItemInput `json:"items" binding:"required,min=1,dive"`
}

type failedLogItem struct {
	ServiceID uuid.UUID `json:"serviceId"`
	Error     string    `json:"error"`
}

// CreateServiceLogs creates one log per submitted item. Barbers log their own
// work as pending; managers pick the barber and the logs are approved on the
// spot. Each log is an independent insert, so a batch can partially succeed.
func CreateServiceLogs(c *gin.Context) {
	actorID, role, ok := currentActor(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found in context")
		return
	}

	var input CreateServiceLogsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	barberID := actorID
	autoApprove := false

	if role == models.RoleManager {
		if input.BarberID == nil {
			utils.RespondWithError(c, http.StatusBadRequest, "barberId is required when logging on a barber's behalf")
			return
		}
		var barber models.User
		if err := config.DB.Where("id = ? AND role = ?", *input.BarberID, models.RoleBarber).
			First(&barber).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Barber not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
		barberID = barber.ID
		autoApprove = true
	}

	now := time.Now()
	created := make([]models.ServiceLog, 0, len(input.Items))
	failed := make([]failedLogItem, 0)

	for _, item := range input.Items {
		var service models.Service
		if err := config.DB.First(&service, "id = ?", item.ServiceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				failed = append(failed, failedLogItem{ServiceID: item.ServiceID, Error: "Service not found"})
			} else {
				failed = append(failed, failedLogItem{ServiceID: item.ServiceID, Error: "Database error"})
			}
			continue
		}

		price := service.Price
		if item.Price != nil {
			price = *item.Price
		}

		logEntry := models.ServiceLog{
			BarberID:         barberID,
			ServiceID:        service.ID,
			Price:            price,
			CommissionRate:   service.CommissionRate,
			CommissionAmount: services.CommissionAmount(price, service.CommissionRate),
			Status:           models.LogStatusPending,
		}
		if autoApprove {
			logEntry.Status = models.LogStatusApproved
			logEntry.ApprovedAt = &now
		}

		if err := config.DB.Create(&logEntry).Error; err != nil {
			log.Error().Err(err).Str("serviceId", service.ID.String()).Msg("Failed to create service log")
			failed = append(failed, failedLogItem{ServiceID: item.ServiceID, Error: "Failed to create log"})
			continue
		}
		created = append(created, logEntry)
	}

	if len(created) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "No service logs were created",
			"failed": failed,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"created": created,
		"failed":  failed,
	})
}

// GetServiceLogs lists logs, optionally filtered by status and barber.
// Barbers only ever see their own logs.
func GetServiceLogs(c *gin.Context) {
	actorID, role, ok := currentActor(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found in context")
		return
	}

	query := config.DB.Model(&models.ServiceLog{}).Order("created_at desc")

	if status := c.Query("status"); status != "" {
		if status != models.LogStatusPending && status != models.LogStatusApproved && status != models.LogStatusRejected {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid status filter")
			return
		}
		query = query.Where("status = ?", status)
	}

	if role == models.RoleBarber {
		query = query.Where("barber_id = ?", actorID)
	} else if barberID := c.Query("barberId"); barberID != "" {
		barberUUID, err := uuid.Parse(barberID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid barber ID format")
			return
		}
		query = query.Where("barber_id = ?", barberUUID)
	}

	var logs []models.ServiceLog
	if err := query.Find(&logs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve service logs")
		return
	}

	c.JSON(http.StatusOK, logs)
}

// GetPendingServiceLogs returns the manager approval queue, oldest first.
func GetPendingServiceLogs(c *gin.Context) {
	var logs []models.ServiceLog
	if err := config.DB.Where("status = ?", models.LogStatusPending).
		Order("created_at asc").
		Find(&logs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve pending logs")
		return
	}

	c.JSON(http.StatusOK, logs)
}

// ApproveServiceLog transitions a pending log to approved.
func ApproveServiceLog(c *gin.Context) {
	transitionServiceLog(c, models.LogStatusApproved)
}

// RejectServiceLog transitions a pending log to rejected.
func RejectServiceLog(c *gin.Context) {
	transitionServiceLog(c, models.LogStatusRejected)
}

// transitionServiceLog applies pending -> approved|rejected. Approved and
// rejected are terminal; exactly one of approvedAt/rejectedAt gets set. The
// update is conditional on the row still being pending, so two concurrent
// decisions cannot both land.
func transitionServiceLog(c *gin.Context, target string) {
	logUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service log ID format")
		return
	}

	var logEntry models.ServiceLog
	if err := config.DB.First(&logEntry, "id = ?", logUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service log not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	updated, err := services.TransitionLog(logEntry, target, time.Now())
	if err != nil {
		utils.RespondWithError(c, http.StatusConflict, "Only pending service logs can be "+target)
		return
	}

	updates := map[string]interface{}{"status": updated.Status}
	if target == models.LogStatusApproved {
		updates["approved_at"] = updated.ApprovedAt
	} else {
		updates["rejected_at"] = updated.RejectedAt
	}

	result := config.DB.Model(&models.ServiceLog{}).
		Where("id = ? AND status = ?", logUUID, models.LogStatusPending).
		Updates(updates)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service log")
		return
	}
	if result.RowsAffected == 0 {
		// Lost the race: another request already decided this log
		utils.RespondWithError(c, http.StatusConflict, "Only pending service logs can be "+target)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteServiceLog removes a pending log. Approved and rejected logs feed
// reports and cannot be deleted. Barbers may only delete their own logs.
func DeleteServiceLog(c *gin.Context) {
	actorID, role, ok := currentActor(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found in context")
		return
	}

	logUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service log ID format")
		return
	}

	var logEntry models.ServiceLog
	if err := config.DB.First(&logEntry, "id = ?", logUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service log not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if role == models.RoleBarber && logEntry.BarberID != actorID {
		utils.RespondWithError(c, http.StatusForbidden, "Cannot delete another barber's log")
		return
	}

	if err := services.CanDeleteLog(logEntry); err != nil {
		utils.RespondWithError(c, http.StatusConflict, "Only pending service logs can be deleted")
		return
	}

	// Conditional on pending so a concurrent approval cannot lose the row
	result := config.DB.
		Where("id = ? AND status = ?", logUUID, models.LogStatusPending).
		Delete(&models.ServiceLog{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service log")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusConflict, "Only pending service logs can be deleted")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service log deleted successfully"})
}

// currentActor reads the authenticated user's id and role from the context.
func currentActor(c *gin.Context) (uuid.UUID, string, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		return uuid.Nil, "", false
	}
	role, exists := c.Get("role")
	if !exists {
		return uuid.Nil, "", false
	}

	idStr, ok := userID.(string)
	if !ok {
		return uuid.Nil, "", false
	}
	roleStr, ok := role.(string)
	if !ok {
		return uuid.Nil, "", false
	}

	actorUUID, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, "", false
	}
	return actorUUID, roleStr, true
}
