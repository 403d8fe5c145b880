// controllers/dashboard.go
package controllers

import (
	"net/http"
	"time"

	"salonflow-backend/config"
	"salonflow-backend/models"
	"salonflow-backend/utils"

	"github.com/gin-gonic/gin"
)

type DashboardOverview struct {
	TotalRevenue     float64 `json:"totalRevenue"` // approved services only
	TotalServices    int64   `json:"totalServices"`
	ActiveBarbers    int64   `json:"activeBarbers"`
	PendingApprovals int64   `json:"pendingApprovals"`
}

type BarberDailyStats struct {
	Date          string  `json:"date"`
	PendingCount  int64   `json:"pendingCount"`
	ApprovedCount int64   `json:"approvedCount"`
	RejectedCount int64   `json:"rejectedCount"`
	Revenue       float64 `json:"revenue"`    // approved logs created today
	Commission    float64 `json:"commission"` // earned on approved logs
}

// GetDashboardOverview returns the manager dashboard KPIs.
func GetDashboardOverview(c *gin.Context) {
	var overview DashboardOverview

	if err := config.DB.Model(&models.ServiceLog{}).
		Where("status = ?", models.LogStatusApproved).
		Select("COALESCE(SUM(price), 0)").
		Scan(&overview.TotalRevenue).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute revenue")
		return
	}

	if err := config.DB.Model(&models.ServiceLog{}).
		Count(&overview.TotalServices).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to count service logs")
		return
	}

	if err := config.DB.Model(&models.User{}).
		Where("role = ? AND is_active = true", models.RoleBarber).
		Count(&overview.ActiveBarbers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to count barbers")
		return
	}

	if err := config.DB.Model(&models.ServiceLog{}).
		Where("status = ?", models.LogStatusPending).
		Count(&overview.PendingApprovals).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to count pending logs")
		return
	}

	c.JSON(http.StatusOK, overview)
}

// GetBarberDailyStats returns the authenticated barber's own numbers for today.
func GetBarberDailyStats(c *gin.Context) {
	actorID, _, ok := currentActor(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found in context")
		return
	}

	start := utils.BeginningOfDay(time.Now())
	end := utils.EndOfDay(time.Now())

	var logs []models.ServiceLog
	if err := config.DB.
		Where("barber_id = ? AND created_at BETWEEN ? AND ?", actorID, start, end).
		Find(&logs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve service logs")
		return
	}

	stats := BarberDailyStats{Date: start.Format("2006-01-02")}
	for _, log := range logs {
		switch log.Status {
		case models.LogStatusPending:
			stats.PendingCount++
		case models.LogStatusApproved:
			stats.ApprovedCount++
			stats.Revenue += log.Price
			stats.Commission += log.CommissionAmount
		case models.LogStatusRejected:
			stats.RejectedCount++
		}
	}

	c.JSON(http.StatusOK, stats)
}
