// controllers/inventory.go
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

// CreateInventoryItemInput defines the expected JSON structure for creating an item
type CreateInventoryItemInput struct {
	Name          string     `json:"name" binding:"required"`
	Brand         string     `json:"brand" binding:"required"`
	Category      string     `json:"category" binding:"required"`
	SKU           string     `json:"sku" binding:"required"`
	Stock         *int       `json:"stock" binding:"required,min=0"`
	Price         *float64   `json:"price" binding:"omitempty,min=0"`
	CostPrice     *float64   `json:"costPrice" binding:"required,min=0"`
	ReorderPoint  *int       `json:"reorderPoint" binding:"required,min=0"`
	UnitOfMeasure string     `json:"unitOfMeasure" binding:"required"`
	SupplierID    *uuid.UUID `json:"supplierId"`
	IsSellable    bool       `json:"isSellable"`
}

// UpdateInventoryItemInput defines the expected JSON structure for updating an item
type UpdateInventoryItemInput struct {
	Name          *string    `json:"name"`
	Brand         *string    `json:"brand"`
	Category      *string    `json:"category"`
	SKU           *string    `json:"sku"`
	Stock         *int       `json:"stock" binding:"omitempty,min=0"`
	Price         *float64   `json:"price" binding:"omitempty,min=0"`
	CostPrice     *float64   `json:"costPrice" binding:"omitempty,min=0"`
	ReorderPoint  *int       `json:"reorderPoint" binding:"omitempty,min=0"`
	UnitOfMeasure *string    `json:"unitOfMeasure"`
	SupplierID    *uuid.UUID `json:"supplierId"`
	IsSellable    *bool      `json:"isSellable"`
}

// StockAdjustmentInput defines the expected JSON structure for a stock adjustment
type StockAdjustmentInput struct {
	Quantity int    `json:"quantity" binding:"required,min=1"`
	Type     string `json:"type" binding:"required,oneof=add deduct damage return"`
	Reason   string `json:"reason"`
}

// CreateInventoryItem adds a stock-tracked product
func CreateInventoryItem(c *gin.Context) {
	var input CreateInventoryItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.IsSellable && input.Price == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Price is required for sellable items")
		return
	}

	var existing models.InventoryItem
	result := config.DB.Where("sku = ?", input.SKU).First(&existing)
	if result.Error == nil {
		utils.RespondWithError(c, http.StatusConflict, "Item with this SKU already exists")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	item := models.InventoryItem{
		Name:          input.Name,
		Brand:         input.Brand,
		Category:      input.Category,
		SKU:           input.SKU,
		Stock:         *input.Stock,
		Price:         input.Price,
		CostPrice:     *input.CostPrice,
		ReorderPoint:  *input.ReorderPoint,
		UnitOfMeasure: input.UnitOfMeasure,
		SupplierID:    input.SupplierID,
		IsSellable:    input.IsSellable,
	}

	if err := config.DB.Create(&item).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create inventory item")
		return
	}

	c.JSON(http.StatusCreated, item)
}

// GetInventoryItems retrieves all items, ordered by name
func GetInventoryItems(c *gin.Context) {
	var items []models.InventoryItem
	if err := config.DB.Order("name asc").Find(&items).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve inventory")
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetInventoryItem retrieves a specific item by ID
func GetInventoryItem(c *gin.Context) {
	itemUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid item ID format")
		return
	}

	var item models.InventoryItem
	if err := config.DB.First(&item, "id = ?", itemUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Inventory item not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, item)
}

// UpdateInventoryItem edits an item
func UpdateInventoryItem(c *gin.Context) {
	itemUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid item ID format")
		return
	}

	var input UpdateInventoryItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var item models.InventoryItem
	if err := config.DB.First(&item, "id = ?", itemUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Inventory item not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Brand != nil {
		item.Brand = *input.Brand
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.SKU != nil && *input.SKU != item.SKU {
		var existing models.InventoryItem
		if err := config.DB.Where("sku = ? AND id <> ?", *input.SKU, item.ID).
			First(&existing).Error; err == nil {
			utils.RespondWithError(c, http.StatusConflict, "Item with this SKU already exists")
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
		item.SKU = *input.SKU
	}
	if input.Stock != nil {
		item.Stock = *input.Stock
	}
	if input.Price != nil {
		item.Price = input.Price
	}
	if input.CostPrice != nil {
		item.CostPrice = *input.CostPrice
	}
	if input.ReorderPoint != nil {
		item.ReorderPoint = *input.ReorderPoint
	}
	if input.UnitOfMeasure != nil {
		item.UnitOfMeasure = *input.UnitOfMeasure
	}
	if input.SupplierID != nil {
		item.SupplierID = input.SupplierID
	}
	if input.IsSellable != nil {
		item.IsSellable = *input.IsSellable
	}

	if item.IsSellable && item.Price == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Price is required for sellable items")
		return
	}

	if err := config.DB.Save(&item).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update inventory item")
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteInventoryItem removes an item
func DeleteInventoryItem(c *gin.Context) {
	itemUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid item ID format")
		return
	}

	result := config.DB.Delete(&models.InventoryItem{}, "id = ?", itemUUID)

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete inventory item")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Inventory item not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Inventory item deleted successfully"})
}

// AdjustStock records a stock adjustment and applies it to the item's stock
// level in one transaction, so the audit trail and the stock level cannot
// diverge. Deducting below zero is a conflict.
func AdjustStock(c *gin.Context) {
	actorID, _, ok := currentActor(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found in context")
		return
	}

	itemUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid item ID format")
		return
	}

	var input StockAdjustmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var item models.InventoryItem
	if err := tx.First(&item, "id = ?", itemUUID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Inventory item not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	newStock := item.Stock
	if input.Type == models.AdjustmentAdd {
		newStock += input.Quantity
	} else {
		newStock -= input.Quantity
	}
	if newStock < 0 {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusConflict, "Stock cannot go below zero for item: "+item.Name)
		return
	}

	adjustment := models.StockAdjustment{
		ItemID:       item.ID,
		Quantity:     input.Quantity,
		Type:         input.Type,
		Reason:       input.Reason,
		AdjustedByID: actorID,
		AdjustedAt:   time.Now(),
	}

	if err := tx.Create(&adjustment).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to record stock adjustment")
		return
	}

	if err := tx.Model(&item).Update("stock", newStock).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update stock level")
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to commit stock adjustment")
		return
	}

	item.Stock = newStock
	c.JSON(http.StatusCreated, gin.H{
		"adjustment": adjustment,
		"item":       item,
	})
}

// GetStockAdjustments returns the adjustment audit trail for an item
func GetStockAdjustments(c *gin.Context) {
	itemUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid item ID format")
		return
	}

	var adjustments []models.StockAdjustment
	if err := config.DB.Where("item_id = ?", itemUUID).
		Order("adjusted_at desc").
		Find(&adjustments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve adjustments")
		return
	}

	c.JSON(http.StatusOK, adjustments)
}

// GetInventoryKPIs recomputes the stock KPIs over the full item list
func GetInventoryKPIs(c *gin.Context) {
	var items []models.InventoryItem
	if err := config.DB.Find(&items).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve inventory")
		return
	}

	c.JSON(http.StatusOK, services.ComputeInventoryKPIs(items))
}
