package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	LogStatusPending  = "pending"
	LogStatusApproved = "approved"
	LogStatusRejected = "rejected"
)

// ServiceLog records one service performed by one barber. Price and
// CommissionRate are snapshots taken from the service at creation time;
// later catalog edits never touch existing logs.
type ServiceLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BarberID  uuid.UUID `gorm:"type:uuid;index;not null" json:"barberId"`
	ServiceID uuid.UUID `gorm:"type:uuid;index;not null" json:"serviceId"`

	Price            float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	CommissionRate   float64 `gorm:"type:decimal(5,4);not null" json:"commissionRate"`
	CommissionAmount float64 `gorm:"type:decimal(10,2);not null" json:"commissionAmount"`

	Status     string     `gorm:"type:varchar(20);index;not null;default:'pending'" json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
	ApprovedAt *time.Time `gorm:"index" json:"approvedAt"`
	RejectedAt *time.Time `json:"rejectedAt"`
}

func (l *ServiceLog) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return
}
