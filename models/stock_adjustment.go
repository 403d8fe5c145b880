package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AdjustmentAdd    = "add"
	AdjustmentDeduct = "deduct"
	AdjustmentDamage = "damage"
	AdjustmentReturn = "return"
)

// StockAdjustment is the audit entry for a stock change. type=add raises the
// item's stock by Quantity, every other type lowers it.
type StockAdjustment struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ItemID uuid.UUID `gorm:"type:uuid;index;not null" json:"itemId"`

	Quantity     int       `gorm:"not null" json:"quantity"`
	Type         string    `gorm:"type:varchar(20);not null" json:"type"` // add, deduct, damage, return
	Reason       string    `json:"reason"`
	AdjustedByID uuid.UUID `gorm:"type:uuid;index;not null" json:"adjustedBy"`
	AdjustedAt   time.Time `json:"adjustedAt"`
}

func (a *StockAdjustment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
