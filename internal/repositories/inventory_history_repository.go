package repositories

import (
	"context"
	"fmt"
	"time"

	"backoffice/internal/domain/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// InventoryHistoryRepository is an append-only log of stock movements.
// Newest changes come first in every listing.
type InventoryHistoryRepository struct {
	*SQLRepository[models.InventoryHistory, *models.InventoryHistory]
}

func NewInventoryHistoryRepository(db *sqlx.DB) *InventoryHistoryRepository {
	return &InventoryHistoryRepository{
		SQLRepository: NewSQLRepository[models.InventoryHistory](db, InventoryHistoryTable),
	}
}

func (r *InventoryHistoryRepository) GetAll(ctx context.Context) ([]models.InventoryHistory, error) {
	return r.list(ctx, "")
}

func (r *InventoryHistoryRepository) GetByProductID(ctx context.Context, productID uuid.UUID) ([]models.InventoryHistory, error) {
	return r.list(ctx, "WHERE product_id = ?", productID)
}

// GetByDateRange returns changes with start <= changed_at <= end.
func (r *InventoryHistoryRepository) GetByDateRange(ctx context.Context, start, end time.Time) ([]models.InventoryHistory, error) {
	return r.list(ctx, "WHERE changed_at >= ? AND changed_at <= ?", start.UTC(), end.UTC())
}

func (r *InventoryHistoryRepository) list(ctx context.Context, where string, args ...any) ([]models.InventoryHistory, error) {
	rows := []models.InventoryHistory{}
	q := fmt.Sprintf("SELECT %s FROM %s %s ORDER BY changed_at DESC",
		r.Table.selectList(), r.Table.Name, where)
	if err := r.DB.SelectContext(ctx, &rows, r.DB.Rebind(q), args...); err != nil {
		return nil, fmt.Errorf("list %s: %w", r.Table.Name, err)
	}
	return rows, nil
}
