package services

import (
	"context"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/dto"
	"backoffice/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultStockHistoryWindow is used when a stock history report has no start date.
const DefaultStockHistoryWindow = 30 * 24 * time.Hour

// ReportService builds read-only aggregates across entities. Every report
// reads its collections one after another.
type ReportService struct {
	Categories   repositories.Repository[models.Category]
	Products     repositories.Repository[models.Product]
	Customers    repositories.Repository[models.Customer]
	Orders       repositories.Repository[models.Order]
	OrderDetails repositories.Repository[models.OrderDetail]
	Inventories  repositories.Repository[models.Inventory]
	History      HistoryStore
	Log          *zap.Logger

	now func() time.Time
}

func (s *ReportService) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now().UTC()
}

func (s *ReportService) ProductsByCategory(ctx context.Context) ([]dto.ProductCategoryReportDTO, error) {
	categories, err := s.Categories.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.Products.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[uuid.UUID][]models.Product)
	for _, p := range products {
		byCategory[p.CategoryID] = append(byCategory[p.CategoryID], p)
	}
	out := make([]dto.ProductCategoryReportDTO, 0, len(categories))
	for _, c := range categories {
		out = append(out, categoryReport(c, byCategory[c.ID]))
	}
	return out, nil
}

func (s *ReportService) ProductsByCategoryID(ctx context.Context, categoryID uuid.UUID) (dto.ProductCategoryReportDTO, error) {
	if categoryID == uuid.Nil {
		return dto.ProductCategoryReportDTO{}, domain.ValidationError{Field: "categoryId", Msg: "must not be empty"}
	}
	c, err := s.Categories.GetByID(ctx, categoryID)
	if err != nil {
		return dto.ProductCategoryReportDTO{}, err
	}
	products, err := s.Products.GetAll(ctx)
	if err != nil {
		return dto.ProductCategoryReportDTO{}, err
	}
	var mine []models.Product
	for _, p := range products {
		if p.CategoryID == c.ID {
			mine = append(mine, p)
		}
	}
	return categoryReport(c, mine), nil
}

func categoryReport(c models.Category, products []models.Product) dto.ProductCategoryReportDTO {
	r := dto.ProductCategoryReportDTO{
		CategoryID:   c.ID,
		CategoryName: c.Name,
		ProductCount: len(products),
		Products:     make([]dto.ProductSummaryDTO, 0, len(products)),
	}
	for _, p := range products {
		r.TotalPrice += p.Price
		r.Products = append(r.Products, dto.ProductSummaryDTO{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			CreatedAt:   p.CreatedAt,
		})
	}
	if len(products) > 0 {
		r.AveragePrice = r.TotalPrice / float64(len(products))
	}
	return r
}

// catalog indexes products and category names for lookups by id.
type catalog struct {
	products   map[uuid.UUID]models.Product
	categories map[uuid.UUID]string
}

func (s *ReportService) loadCatalog(ctx context.Context) (catalog, error) {
	categories, err := s.Categories.GetAll(ctx)
	if err != nil {
		return catalog{}, err
	}
	products, err := s.Products.GetAll(ctx)
	if err != nil {
		return catalog{}, err
	}
	cat := catalog{
		products:   make(map[uuid.UUID]models.Product, len(products)),
		categories: make(map[uuid.UUID]string, len(categories)),
	}
	for _, c := range categories {
		cat.categories[c.ID] = c.Name
	}
	for _, p := range products {
		cat.products[p.ID] = p
	}
	return cat, nil
}

func (c catalog) categoryOf(productID uuid.UUID) string {
	return c.categories[c.products[productID].CategoryID]
}

func (s *ReportService) PurchaseDetails(ctx context.Context) ([]dto.PurchaseDetailReportDTO, error) {
	orders, err := s.Orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.purchaseDetails(ctx, orders)
}

func (s *ReportService) PurchaseDetailsByOrder(ctx context.Context, orderID uuid.UUID) (dto.PurchaseDetailReportDTO, error) {
	if orderID == uuid.Nil {
		return dto.PurchaseDetailReportDTO{}, domain.ValidationError{Field: "orderId", Msg: "must not be empty"}
	}
	o, err := s.Orders.GetByID(ctx, orderID)
	if err != nil {
		return dto.PurchaseDetailReportDTO{}, err
	}
	out, err := s.purchaseDetails(ctx, []models.Order{o})
	if err != nil {
		return dto.PurchaseDetailReportDTO{}, err
	}
	return out[0], nil
}

func (s *ReportService) purchaseDetails(ctx context.Context, orders []models.Order) ([]dto.PurchaseDetailReportDTO, error) {
	customers, err := s.Customers.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	details, err := s.OrderDetails.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	cat, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	customerByID := make(map[uuid.UUID]models.Customer, len(customers))
	for _, c := range customers {
		customerByID[c.ID] = c
	}
	detailsByOrder := make(map[uuid.UUID][]models.OrderDetail)
	for _, d := range details {
		detailsByOrder[d.OrderID] = append(detailsByOrder[d.OrderID], d)
	}

	out := make([]dto.PurchaseDetailReportDTO, 0, len(orders))
	for _, o := range orders {
		cust := customerByID[o.CustomerID]
		r := dto.PurchaseDetailReportDTO{
			OrderID:       o.ID,
			OrderDate:     o.OrderDate,
			CustomerName:  cust.Name,
			CustomerEmail: cust.Email,
			TotalAmount:   o.TotalAmount,
			Items:         []dto.PurchaseItemDTO{},
		}
		for _, d := range detailsByOrder[o.ID] {
			p := cat.products[d.ProductID]
			r.TotalItems += d.Quantity
			r.Items = append(r.Items, dto.PurchaseItemDTO{
				ProductID:          d.ProductID,
				ProductName:        p.Name,
				ProductDescription: p.Description,
				CategoryName:       cat.categoryOf(d.ProductID),
				Quantity:           d.Quantity,
				UnitPrice:          d.UnitPrice,
				Subtotal:           float64(d.Quantity) * d.UnitPrice,
			})
		}
		out = append(out, r)
	}
	return out, nil
}

// InventoryValue values every inventory row at its product's current price.
func (s *ReportService) InventoryValue(ctx context.Context) (dto.InventoryValueReportDTO, error) {
	inventories, err := s.Inventories.GetAll(ctx)
	if err != nil {
		return dto.InventoryValueReportDTO{}, err
	}
	cat, err := s.loadCatalog(ctx)
	if err != nil {
		return dto.InventoryValueReportDTO{}, err
	}

	r := dto.InventoryValueReportDTO{
		ReportGeneratedAt: s.clock(),
		Products:          make([]dto.ProductInventoryValueDTO, 0, len(inventories)),
	}
	for _, inv := range inventories {
		p := cat.products[inv.ProductID]
		value := float64(inv.StockQuantity) * p.Price
		r.TotalInventoryValue += value
		r.TotalStockQuantity += inv.StockQuantity
		r.Products = append(r.Products, dto.ProductInventoryValueDTO{
			ProductID:       inv.ProductID,
			ProductName:     p.Name,
			CategoryName:    cat.categoryOf(inv.ProductID),
			StockQuantity:   inv.StockQuantity,
			UnitPrice:       p.Price,
			TotalValue:      value,
			LastStockUpdate: inv.LastStockUpdate,
		})
	}
	r.TotalProducts = len(r.Products)
	return r, nil
}

// StockHistory summarizes stock movements between start and end. A nil end
// means now; a nil start means DefaultStockHistoryWindow before end.
func (s *ReportService) StockHistory(ctx context.Context, start, end *time.Time) (dto.StockHistoryReportDTO, error) {
	return s.stockHistory(ctx, uuid.Nil, start, end)
}

func (s *ReportService) StockHistoryByProduct(ctx context.Context, productID uuid.UUID, start, end *time.Time) (dto.StockHistoryReportDTO, error) {
	if productID == uuid.Nil {
		return dto.StockHistoryReportDTO{}, domain.ValidationError{Field: "productId", Msg: "must not be empty"}
	}
	ok, err := s.Products.Exists(ctx, productID)
	if err != nil {
		return dto.StockHistoryReportDTO{}, err
	}
	if !ok {
		return dto.StockHistoryReportDTO{}, domain.NotFoundError{Resource: "Product", ID: productID.String()}
	}
	return s.stockHistory(ctx, productID, start, end)
}

func (s *ReportService) stockHistory(ctx context.Context, productID uuid.UUID, start, end *time.Time) (dto.StockHistoryReportDTO, error) {
	to := s.clock()
	if end != nil {
		to = end.UTC()
	}
	from := to.Add(-DefaultStockHistoryWindow)
	if start != nil {
		from = start.UTC()
	}
	if to.Before(from) {
		return dto.StockHistoryReportDTO{}, domain.ValidationError{Field: "endDate", Msg: "must not be before startDate"}
	}

	rows, err := s.History.GetByDateRange(ctx, from, to)
	if err != nil {
		return dto.StockHistoryReportDTO{}, err
	}
	cat, err := s.loadCatalog(ctx)
	if err != nil {
		return dto.StockHistoryReportDTO{}, err
	}

	r := dto.StockHistoryReportDTO{StartDate: from, EndDate: to, Changes: []dto.StockChangeDTO{}}
	for _, h := range rows {
		if productID != uuid.Nil && h.ProductID != productID {
			continue
		}
		switch h.ChangeType {
		case models.ChangeTypeAddition:
			r.TotalAdditions++
		case models.ChangeTypeReduction:
			r.TotalReductions++
		default:
			r.TotalAdjustments++
		}
		r.Changes = append(r.Changes, dto.StockChangeDTO{
			ID:               h.ID,
			ProductID:        h.ProductID,
			ProductName:      cat.products[h.ProductID].Name,
			CategoryName:     cat.categoryOf(h.ProductID),
			PreviousQuantity: h.PreviousQuantity,
			NewQuantity:      h.NewQuantity,
			QuantityChange:   h.QuantityChange,
			ChangeType:       h.ChangeType,
			Notes:            h.Notes,
			ChangedAt:        h.ChangedAt,
		})
	}
	r.TotalChanges = len(r.Changes)
	return r, nil
}
