package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ChangeTypeAddition   = "Addition"
	ChangeTypeReduction  = "Reduction"
	ChangeTypeAdjustment = "Adjustment"
)

// Inventory has no updated_at column; LastStockUpdate is stamped instead.
type Inventory struct {
	ID              uuid.UUID `db:"id" json:"id"`
	ProductID       uuid.UUID `db:"product_id" json:"productId"`
	StockQuantity   int       `db:"stock_quantity" json:"stockQuantity"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
	LastStockUpdate time.Time `db:"last_stock_update" json:"lastStockUpdate"`
}

func (i *Inventory) GetID() uuid.UUID         { return i.ID }
func (i *Inventory) SetID(id uuid.UUID)       { i.ID = id }
func (i *Inventory) GetCreatedAt() time.Time  { return i.CreatedAt }
func (i *Inventory) SetCreatedAt(t time.Time) { i.CreatedAt = t }
func (i *Inventory) SetUpdatedAt(t time.Time) { i.LastStockUpdate = t }

type InventoryHistory struct {
	ID               uuid.UUID `db:"id" json:"id"`
	InventoryID      uuid.UUID `db:"inventory_id" json:"inventoryId"`
	ProductID        uuid.UUID `db:"product_id" json:"productId"`
	PreviousQuantity int       `db:"previous_quantity" json:"previousQuantity"`
	NewQuantity      int       `db:"new_quantity" json:"newQuantity"`
	QuantityChange   int       `db:"quantity_change" json:"quantityChange"`
	ChangeType       string    `db:"change_type" json:"changeType"`
	Notes            string    `db:"notes" json:"notes"`
	ChangedAt        time.Time `db:"changed_at" json:"changedAt"`
}

func (h *InventoryHistory) GetID() uuid.UUID   { return h.ID }
func (h *InventoryHistory) SetID(id uuid.UUID) { h.ID = id }

// ChangeTypeFor classifies a stock movement by its sign.
func ChangeTypeFor(delta int) string {
	switch {
	case delta > 0:
		return ChangeTypeAddition
	case delta < 0:
		return ChangeTypeReduction
	default:
		return ChangeTypeAdjustment
	}
}
