package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name           string    `gorm:"not null" json:"name"`
	Price          float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Duration       int       `gorm:"not null" json:"duration"` // in minutes
	CommissionRate float64   `gorm:"type:decimal(5,4);not null" json:"commissionRate"`

	CreatedAt time.Time `json:"createdAt"`

	ServiceLogs []ServiceLog `gorm:"foreignKey:ServiceID" json:"-"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
