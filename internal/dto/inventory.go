package dto

import (
	"time"

	"backoffice/internal/domain/models"

	"github.com/google/uuid"
)

type InventoryDTO struct {
	ID              uuid.UUID `json:"id"`
	ProductID       uuid.UUID `json:"productId"`
	StockQuantity   int       `json:"stockQuantity"`
	LastStockUpdate time.Time `json:"lastStockUpdate"`
}

type CreateInventoryRequest struct {
	ProductID     uuid.UUID `json:"productId" binding:"required"`
	StockQuantity int       `json:"stockQuantity" binding:"gte=0"`
}

// UpdateInventoryRequest replaces the whole row, ProductID included.
type UpdateInventoryRequest struct {
	ProductID     uuid.UUID `json:"productId" binding:"required"`
	StockQuantity int       `json:"stockQuantity" binding:"gte=0"`
}

type AdjustStockRequest struct {
	NewQuantity *int   `json:"newQuantity" binding:"required,gte=0"`
	Notes       string `json:"notes" binding:"max=500"`
}

func InventoryToDTO(m models.Inventory) InventoryDTO {
	return InventoryDTO{
		ID:              m.ID,
		ProductID:       m.ProductID,
		StockQuantity:   m.StockQuantity,
		LastStockUpdate: m.LastStockUpdate,
	}
}

func InventoryFromCreate(r CreateInventoryRequest) models.Inventory {
	return models.Inventory{ProductID: r.ProductID, StockQuantity: r.StockQuantity}
}

func InventoryFromUpdate(r UpdateInventoryRequest) models.Inventory {
	return models.Inventory{ProductID: r.ProductID, StockQuantity: r.StockQuantity}
}

type InventoryHistoryDTO struct {
	ID               uuid.UUID `json:"id"`
	InventoryID      uuid.UUID `json:"inventoryId"`
	ProductID        uuid.UUID `json:"productId"`
	PreviousQuantity int       `json:"previousQuantity"`
	NewQuantity      int       `json:"newQuantity"`
	QuantityChange   int       `json:"quantityChange"`
	ChangeType       string    `json:"changeType"`
	Notes            string    `json:"notes"`
	ChangedAt        time.Time `json:"changedAt"`
}

func InventoryHistoryToDTO(m models.InventoryHistory) InventoryHistoryDTO {
	return InventoryHistoryDTO{
		ID:               m.ID,
		InventoryID:      m.InventoryID,
		ProductID:        m.ProductID,
		PreviousQuantity: m.PreviousQuantity,
		NewQuantity:      m.NewQuantity,
		QuantityChange:   m.QuantityChange,
		ChangeType:       m.ChangeType,
		Notes:            m.Notes,
		ChangedAt:        m.ChangedAt,
	}
}
