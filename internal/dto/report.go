package dto

import (
	"time"

	"github.com/google/uuid"
)

type ProductSummaryDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ProductCategoryReportDTO struct {
	CategoryID   uuid.UUID           `json:"categoryId"`
	CategoryName string              `json:"categoryName"`
	ProductCount int                 `json:"productCount"`
	TotalPrice   float64             `json:"totalPrice"`
	AveragePrice float64             `json:"averagePrice"`
	Products     []ProductSummaryDTO `json:"products"`
}

type StockChangeDTO struct {
	ID               uuid.UUID `json:"id"`
	ProductID        uuid.UUID `json:"productId"`
	ProductName      string    `json:"productName"`
	CategoryName     string    `json:"categoryName"`
	PreviousQuantity int       `json:"previousQuantity"`
	NewQuantity      int       `json:"newQuantity"`
	QuantityChange   int       `json:"quantityChange"`
	ChangeType       string    `json:"changeType"`
	Notes            string    `json:"notes"`
	ChangedAt        time.Time `json:"changedAt"`
}

type StockHistoryReportDTO struct {
	StartDate        time.Time        `json:"startDate"`
	EndDate          time.Time        `json:"endDate"`
	TotalChanges     int              `json:"totalChanges"`
	TotalAdditions   int              `json:"totalAdditions"`
	TotalReductions  int              `json:"totalReductions"`
	TotalAdjustments int              `json:"totalAdjustments"`
	Changes          []StockChangeDTO `json:"changes"`
}

type ProductInventoryValueDTO struct {
	ProductID       uuid.UUID `json:"productId"`
	ProductName     string    `json:"productName"`
	CategoryName    string    `json:"categoryName"`
	StockQuantity   int       `json:"stockQuantity"`
	UnitPrice       float64   `json:"unitPrice"`
	TotalValue      float64   `json:"totalValue"`
	LastStockUpdate time.Time `json:"lastStockUpdate"`
}

type InventoryValueReportDTO struct {
	TotalInventoryValue float64                    `json:"totalInventoryValue"`
	TotalProducts       int                        `json:"totalProducts"`
	TotalStockQuantity  int                        `json:"totalStockQuantity"`
	ReportGeneratedAt   time.Time                  `json:"reportGeneratedAt"`
	Products            []ProductInventoryValueDTO `json:"products"`
}

type PurchaseItemDTO struct {
	ProductID          uuid.UUID `json:"productId"`
	ProductName        string    `json:"productName"`
	ProductDescription string    `json:"productDescription"`
	CategoryName       string    `json:"categoryName"`
	Quantity           int       `json:"quantity"`
	UnitPrice          float64   `json:"unitPrice"`
	Subtotal           float64   `json:"subtotal"`
}

type PurchaseDetailReportDTO struct {
	OrderID       uuid.UUID         `json:"orderId"`
	OrderDate     time.Time         `json:"orderDate"`
	CustomerName  string            `json:"customerName"`
	CustomerEmail string            `json:"customerEmail"`
	TotalAmount   float64           `json:"totalAmount"`
	TotalItems    int               `json:"totalItems"`
	Items         []PurchaseItemDTO `json:"items"`
}
