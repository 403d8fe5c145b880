package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BarberRevenueBreakdown is one barber's share of a daily report.
type BarberRevenueBreakdown struct {
	BarberID     string  `json:"barberId"`
	BarberName   string  `json:"barberName"`
	Revenue      float64 `json:"revenue"`
	Commission   float64 `json:"commission"`
	ServiceCount int     `json:"serviceCount"`
}

// Custom jsonb type for the per-barber breakdown
type BarberBreakdownList []BarberRevenueBreakdown

func (b BarberBreakdownList) Value() (driver.Value, error) {
	return json.Marshal(b)
}

func (b *BarberBreakdownList) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(bytes, &b)
}

// DailyReport is a persisted snapshot of one calendar day's financials,
// derived entirely from the approved service logs of that day. Regenerating
// for the same date inserts a new snapshot; readers treat the newest row for
// a date as current.
type DailyReport struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ReportNumber string    `gorm:"uniqueIndex;not null" json:"reportNumber"`
	Date         time.Time `gorm:"index;not null" json:"date"` // start of day

	TotalRevenue           float64 `gorm:"type:decimal(10,2);not null" json:"totalRevenue"`
	TotalBarberCommissions float64 `gorm:"type:decimal(10,2);not null" json:"totalBarberCommissions"`
	Profit                 float64 `gorm:"type:decimal(10,2);not null" json:"profit"`
	ManagerCommission      float64 `gorm:"type:decimal(10,2);not null" json:"managerCommission"`
	OwnerCut               float64 `gorm:"type:decimal(10,2);not null" json:"ownerCut"`

	BarberBreakdown      BarberBreakdownList `gorm:"type:jsonb;default:'[]'" json:"barberBreakdown"`
	ApprovedServiceCount int                 `gorm:"not null" json:"approvedServiceCount"`

	CreatedAt time.Time `json:"createdAt"`
}

func (r *DailyReport) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
