package models

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	Base
	Name    string `db:"name" json:"name"`
	Email   string `db:"email" json:"email"`
	Phone   string `db:"phone" json:"phone"`
	Address string `db:"address" json:"address"`
}

type Order struct {
	Base
	OrderDate   time.Time `db:"order_date" json:"orderDate"`
	CustomerID  uuid.UUID `db:"customer_id" json:"customerId"`
	TotalAmount float64   `db:"total_amount" json:"totalAmount"`
}

type OrderDetail struct {
	Base
	OrderID   uuid.UUID `db:"order_id" json:"orderId"`
	ProductID uuid.UUID `db:"product_id" json:"productId"`
	Quantity  int       `db:"quantity" json:"quantity"`
	UnitPrice float64   `db:"unit_price" json:"unitPrice"`
}
