package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InventoryItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `gorm:"not null" json:"name"`
	Brand    string    `gorm:"not null" json:"brand"`
	Category string    `gorm:"not null" json:"category"`
	SKU      string    `gorm:"column:sku;uniqueIndex;not null" json:"sku"`

	Stock         int        `gorm:"not null;default:0" json:"stock"`
	Price         *float64   `gorm:"type:decimal(10,2)" json:"price"` // required when IsSellable
	CostPrice     float64    `gorm:"type:decimal(10,2);not null" json:"costPrice"`
	ReorderPoint  int        `gorm:"not null;default:0" json:"reorderPoint"`
	UnitOfMeasure string     `gorm:"not null" json:"unitOfMeasure"`
	SupplierID    *uuid.UUID `gorm:"type:uuid" json:"supplierId"`
	IsSellable    bool       `gorm:"default:false" json:"isSellable"`

	CreatedAt   time.Time `json:"createdAt"`
	LastUpdated time.Time `gorm:"autoUpdateTime" json:"lastUpdated"`

	Adjustments []StockAdjustment `gorm:"foreignKey:ItemID" json:"-"`
}

func (i *InventoryItem) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return
}
