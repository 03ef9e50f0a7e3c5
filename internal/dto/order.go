package dto

import (
	"time"

	"backoffice/internal/domain/models"

	"github.com/google/uuid"
)

type OrderDTO struct {
	ID          uuid.UUID `json:"id"`
	CustomerID  uuid.UUID `json:"customerId"`
	OrderDate   time.Time `json:"orderDate"`
	TotalAmount float64   `json:"totalAmount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateOrderRequest struct {
	CustomerID  uuid.UUID `json:"customerId" binding:"required"`
	OrderDate   time.Time `json:"orderDate" binding:"required"`
	TotalAmount float64   `json:"totalAmount" binding:"gte=0"`
}

type UpdateOrderRequest struct {
	CustomerID  uuid.UUID `json:"customerId" binding:"required"`
	OrderDate   time.Time `json:"orderDate" binding:"required"`
	TotalAmount float64   `json:"totalAmount" binding:"gte=0"`
}

func OrderToDTO(m models.Order) OrderDTO {
	return OrderDTO{
		ID:          m.ID,
		CustomerID:  m.CustomerID,
		OrderDate:   m.OrderDate,
		TotalAmount: m.TotalAmount,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func OrderFromCreate(r CreateOrderRequest) models.Order {
	return models.Order{CustomerID: r.CustomerID, OrderDate: r.OrderDate, TotalAmount: r.TotalAmount}
}

func OrderFromUpdate(r UpdateOrderRequest) models.Order {
	return models.Order{CustomerID: r.CustomerID, OrderDate: r.OrderDate, TotalAmount: r.TotalAmount}
}

type OrderDetailDTO struct {
	ID        uuid.UUID `json:"id"`
	OrderID   uuid.UUID `json:"orderId"`
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unitPrice"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateOrderDetailRequest struct {
	OrderID   uuid.UUID `json:"orderId" binding:"required"`
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int       `json:"quantity" binding:"gte=1"`
	UnitPrice float64   `json:"unitPrice" binding:"gte=0"`
}

type UpdateOrderDetailRequest struct {
	OrderID   uuid.UUID `json:"orderId" binding:"required"`
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int       `json:"quantity" binding:"gte=1"`
	UnitPrice float64   `json:"unitPrice" binding:"gte=0"`
}

func OrderDetailToDTO(m models.OrderDetail) OrderDetailDTO {
	return OrderDetailDTO{
		ID:        m.ID,
		OrderID:   m.OrderID,
		ProductID: m.ProductID,
		Quantity:  m.Quantity,
		UnitPrice: m.UnitPrice,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func OrderDetailFromCreate(r CreateOrderDetailRequest) models.OrderDetail {
	return models.OrderDetail{OrderID: r.OrderID, ProductID: r.ProductID, Quantity: r.Quantity, UnitPrice: r.UnitPrice}
}

func OrderDetailFromUpdate(r UpdateOrderDetailRequest) models.OrderDetail {
	return models.OrderDetail{OrderID: r.OrderID, ProductID: r.ProductID, Quantity: r.Quantity, UnitPrice: r.UnitPrice}
}
