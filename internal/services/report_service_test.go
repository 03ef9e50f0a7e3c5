package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reportFixture struct {
	svc      *ReportService
	books    models.Category
	games    models.Category
	empty    models.Category
	novel    models.Product
	atlas    models.Product
	chess    models.Product
	order    models.Order
	customer models.Customer
	now      time.Time
}

func newReportFixture(t *testing.T) reportFixture {
	t.Helper()
	ctx := context.Background()
	f := reportFixture{now: time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)}

	categories := repositories.NewMemoryRepository[models.Category]("Category")
	products := repositories.NewMemoryRepository[models.Product]("Product")
	customers := repositories.NewMemoryRepository[models.Customer]("Customer")
	orders := repositories.NewMemoryRepository[models.Order]("Order")
	details := repositories.NewMemoryRepository[models.OrderDetail]("OrderDetail")
	inventories := repositories.NewMemoryRepository[models.Inventory]("Inventory")
	history := repositories.NewMemoryInventoryHistory()

	must := func(err error) {
		t.Helper()
		require.NoError(t, err)
	}
	var err error
	f.books, err = categories.Create(ctx, models.Category{Name: "Books"})
	must(err)
	f.games, err = categories.Create(ctx, models.Category{Name: "Games"})
	must(err)
	f.empty, err = categories.Create(ctx, models.Category{Name: "Empty"})
	must(err)

	f.novel, err = products.Create(ctx, models.Product{Name: "Novel", Price: 10, CategoryID: f.books.ID})
	must(err)
	f.atlas, err = products.Create(ctx, models.Product{Name: "Atlas", Price: 30, CategoryID: f.books.ID})
	must(err)
	f.chess, err = products.Create(ctx, models.Product{Name: "Chess", Price: 25, CategoryID: f.games.ID})
	must(err)

	f.customer, err = customers.Create(ctx, models.Customer{Name: "Ann", Email: "ann@x.com"})
	must(err)
	f.order, err = orders.Create(ctx, models.Order{CustomerID: f.customer.ID, OrderDate: f.now, TotalAmount: 70})
	must(err)
	_, err = details.Create(ctx, models.OrderDetail{OrderID: f.order.ID, ProductID: f.novel.ID, Quantity: 2, UnitPrice: 10})
	must(err)
	_, err = details.Create(ctx, models.OrderDetail{OrderID: f.order.ID, ProductID: f.chess.ID, Quantity: 2, UnitPrice: 25})
	must(err)

	_, err = inventories.Create(ctx, models.Inventory{ProductID: f.novel.ID, StockQuantity: 5})
	must(err)
	_, err = inventories.Create(ctx, models.Inventory{ProductID: f.chess.ID, StockQuantity: 2})
	must(err)

	for _, h := range []models.InventoryHistory{
		{ProductID: f.novel.ID, ChangeType: models.ChangeTypeAddition, QuantityChange: 5, ChangedAt: f.now.Add(-2 * time.Hour)},
		{ProductID: f.chess.ID, ChangeType: models.ChangeTypeReduction, QuantityChange: -1, ChangedAt: f.now.Add(-3 * time.Hour)},
		{ProductID: f.chess.ID, ChangeType: models.ChangeTypeAdjustment, ChangedAt: f.now.Add(-1 * time.Hour)},
		{ProductID: f.novel.ID, ChangeType: models.ChangeTypeAddition, ChangedAt: f.now.Add(-60 * 24 * time.Hour)},
	} {
		_, err = history.Create(ctx, h)
		must(err)
	}

	f.svc = &ReportService{
		Categories:   categories,
		Products:     products,
		Customers:    customers,
		Orders:       orders,
		OrderDetails: details,
		Inventories:  inventories,
		History:      history,
		now:          func() time.Time { return f.now },
	}
	return f
}

func TestReportService_ProductsByCategory(t *testing.T) {
	f := newReportFixture(t)

	reports, err := f.svc.ProductsByCategory(context.Background())
	require.NoError(t, err)
	require.Len(t, reports, 3)

	books := reports[0]
	assert.Equal(t, "Books", books.CategoryName)
	assert.Equal(t, 2, books.ProductCount)
	assert.InDelta(t, 40.0, books.TotalPrice, 1e-9)
	assert.InDelta(t, 20.0, books.AveragePrice, 1e-9)
	assert.Len(t, books.Products, 2)

	empty := reports[2]
	assert.Equal(t, 0, empty.ProductCount)
	assert.Zero(t, empty.AveragePrice)
	assert.NotNil(t, empty.Products)
}

func TestReportService_ProductsByCategoryID(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	r, err := f.svc.ProductsByCategoryID(ctx, f.games.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, r.ProductCount)
	assert.Equal(t, f.chess.ID, r.Products[0].ID)

	_, err = f.svc.ProductsByCategoryID(ctx, uuid.New())
	assert.True(t, domain.IsNotFound(err))
}

func TestReportService_PurchaseDetails(t *testing.T) {
	f := newReportFixture(t)

	r, err := f.svc.PurchaseDetailsByOrder(context.Background(), f.order.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", r.CustomerName)
	assert.Equal(t, 4, r.TotalItems)
	require.Len(t, r.Items, 2)
	assert.Equal(t, "Books", r.Items[0].CategoryName)
	assert.InDelta(t, 50.0, r.Items[1].Subtotal, 1e-9)

	all, err := f.svc.PurchaseDetails(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestReportService_InventoryValue(t *testing.T) {
	f := newReportFixture(t)

	r, err := f.svc.InventoryValue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, r.TotalProducts)
	assert.Equal(t, 7, r.TotalStockQuantity)
	assert.InDelta(t, 100.0, r.TotalInventoryValue, 1e-9)
	assert.Equal(t, f.now, r.ReportGeneratedAt)
}

func TestReportService_StockHistory(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	r, err := f.svc.StockHistory(ctx, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, r.TotalChanges, "default window skips the 60 day old change")
	assert.Equal(t, 1, r.TotalAdditions)
	assert.Equal(t, 1, r.TotalReductions)
	assert.Equal(t, 1, r.TotalAdjustments)
	assert.Equal(t, "Chess", r.Changes[0].ProductName)
	assert.Equal(t, "Games", r.Changes[0].CategoryName)

	start := f.now.Add(-90 * 24 * time.Hour)
	byProduct, err := f.svc.StockHistoryByProduct(ctx, f.novel.ID, &start, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, byProduct.TotalChanges)
	assert.Equal(t, 2, byProduct.TotalAdditions)

	_, err = f.svc.StockHistoryByProduct(ctx, uuid.New(), nil, nil)
	assert.True(t, domain.IsNotFound(err))

	end := start.Add(-time.Hour)
	_, err = f.svc.StockHistory(ctx, &start, &end)
	assert.True(t, domain.IsValidation(err))
}

func TestReportService_PDFs(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	pdf, name, err := f.svc.ProductsByCategoryPDF(ctx, "req-1")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
	assert.Equal(t, "PRODUCTS_BY_CATEGORY_20240630.pdf", name)

	pdf, name, err = f.svc.StockHistoryPDF(ctx, "req-1", nil, nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
	assert.Equal(t, "STOCK_HISTORY_20240531_20240630.pdf", name)
}
