// controllers/report.go
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
	"gorm.io/gorm"
)

// ReportController handles daily report generation and leaderboards
type ReportController struct{}

// GenerateDailyReportInput names the calendar date to report on.
type GenerateDailyReportInput struct {
	Date string `json:"date" binding:"required"` // YYYY-MM-DD
}

// GenerateDailyReport aggregates the approved service logs of one calendar
// day into a persisted snapshot. A day with no approved logs still produces
// a valid all-zero report. Regenerating inserts a new snapshot; the previous
// one is kept.
func (rc *ReportController) GenerateDailyReport(c *gin.Context) {
	var input GenerateDailyReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	date, err := time.ParseInLocation("2006-01-02", input.Date, time.Local)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	logs, err := rc.approvedLogsBetween(utils.BeginningOfDay(date), utils.EndOfDay(date))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to query service logs")
		return
	}

	barberNames, err := rc.barberNameLookup(logs)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to resolve barber names")
		return
	}

	report := services.BuildDailyReport(date, logs, barberNames)
	report.ReportNumber = "RPT-" + report.Date.Format("20060102") + "-" + utils.GenerateRandomString(6)

	if err := config.DB.Create(&report).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save daily report")
		return
	}

	c.JSON(http.StatusCreated, report)
}

// GetDailyReports lists all report snapshots, newest date first.
func (rc *ReportController) GetDailyReports(c *gin.Context) {
	var reports []models.DailyReport
	if err := config.DB.Order("date desc, created_at desc").Find(&reports).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve reports")
		return
	}

	c.JSON(http.StatusOK, reports)
}

// GetDailyReportByDate returns the latest snapshot for a date. Dates can be
// reported on more than once; the newest row wins.
func (rc *ReportController) GetDailyReportByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "date query parameter is required")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	var report models.DailyReport
	err = config.DB.
		Where("date BETWEEN ? AND ?", utils.BeginningOfDay(date), utils.EndOfDay(date)).
		Order("created_at desc").
		First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "No report for that date")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetBarberLeaderboard ranks barbers by revenue across all approved logs.
func (rc *ReportController) GetBarberLeaderboard(c *gin.Context) {
	logs, err := rc.allApprovedLogs()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to query service logs")
		return
	}

	barberNames, err := rc.barberNameLookup(logs)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to resolve barber names")
		return
	}

	c.JSON(http.StatusOK, services.BuildBarberLeaderboard(logs, barberNames))
}

// GetServiceLeaderboard ranks services by how often they were performed.
func (rc *ReportController) GetServiceLeaderboard(c *gin.Context) {
	logs, err := rc.allApprovedLogs()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to query service logs")
		return
	}

	var catalog []models.Service
	if err := config.DB.Find(&catalog).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}
	serviceNames := make(map[uuid.UUID]string, len(catalog))
	for _, service := range catalog {
		serviceNames[service.ID] = service.Name
	}

	c.JSON(http.StatusOK, services.BuildServiceLeaderboard(logs, serviceNames))
}

// Helper functions for reports

func (rc *ReportController) approvedLogsBetween(start, end time.Time) ([]models.ServiceLog, error) {
	var logs []models.ServiceLog
	err := config.DB.
		Where("status = ? AND approved_at BETWEEN ? AND ?", models.LogStatusApproved, start, end).
		Find(&logs).Error
	return logs, err
}

func (rc *ReportController) allApprovedLogs() ([]models.ServiceLog, error) {
	var logs []models.ServiceLog
	err := config.DB.
		Where("status = ?", models.LogStatusApproved).
		Order("created_at desc").
		Find(&logs).Error
	return logs, err
}

func (rc *ReportController) barberNameLookup(logs []models.ServiceLog) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string)
	if len(logs) == 0 {
		return names, nil
	}

	seen := make(map[uuid.UUID]bool)
	var barberIDs []uuid.UUID
	for _, log := range logs {
		if !seen[log.BarberID] {
			seen[log.BarberID] = true
			barberIDs = append(barberIDs, log.BarberID)
		}
	}

	var barbers []models.User
	if err := config.DB.Where("id IN ?", barberIDs).Find(&barbers).Error; err != nil {
		return nil, err
	}
	for _, barber := range barbers {
		names[barber.ID] = barber.Username
	}
	return names, nil
}
