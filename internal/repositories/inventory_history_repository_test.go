package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"backoffice/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var historyCols = []string{
	"id", "inventory_id", "product_id", "previous_quantity", "new_quantity",
	"quantity_change", "change_type", "notes", "changed_at",
}

const historySelect = "SELECT id, inventory_id, product_id, previous_quantity, new_quantity, " +
	"quantity_change, change_type, notes, changed_at FROM inventory_histories"

func TestInventoryHistoryRepository_GetByProductID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInventoryHistoryRepository(db)

	product, inv := uuid.New(), uuid.New()
	at := time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(historySelect + " WHERE product_id = ? ORDER BY changed_at DESC")).
		WithArgs(product.String()).
		WillReturnRows(sqlmock.NewRows(historyCols).
			AddRow(uuid.NewString(), inv.String(), product.String(), 5, 8, 3, models.ChangeTypeAddition, "restock", at))

	rows, err := repo.GetByProductID(context.Background(), product)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].QuantityChange)
	assert.Equal(t, models.ChangeTypeAddition, rows[0].ChangeType)
}

func TestInventoryHistoryRepository_GetByDateRange(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInventoryHistoryRepository(db)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(historySelect + " WHERE changed_at >= ? AND changed_at <= ? ORDER BY changed_at DESC")).
		WithArgs(start, end).
		WillReturnRows(sqlmock.NewRows(historyCols))

	rows, err := repo.GetByDateRange(context.Background(), start, end)
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.NotNil(t, rows)
}

func TestInventoryHistoryRepository_CreateKeepsChangedAt(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInventoryHistoryRepository(db)

	at := time.Date(2024, 4, 4, 4, 4, 4, 0, time.UTC)
	mock.ExpectExec("INSERT INTO inventory_histories").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), 10, 4, -6, models.ChangeTypeReduction, "", at).
		WillReturnResult(sqlmock.NewResult(0, 1))

	h, err := repo.Create(context.Background(), models.InventoryHistory{
		InventoryID:      uuid.New(),
		ProductID:        uuid.New(),
		PreviousQuantity: 10,
		NewQuantity:      4,
		QuantityChange:   -6,
		ChangeType:       models.ChangeTypeReduction,
		ChangedAt:        at,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, h.ID)
}
