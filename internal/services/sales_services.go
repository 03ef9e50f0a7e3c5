package services

import (
	"time"

	"backoffice/internal/domain/models"
	"backoffice/internal/dto"
	"backoffice/internal/paging"
	"backoffice/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type (
	CustomerService    = GenericService[models.Customer, dto.CustomerDTO, dto.CreateCustomerRequest, dto.UpdateCustomerRequest]
	OrderService       = GenericService[models.Order, dto.OrderDTO, dto.CreateOrderRequest, dto.UpdateOrderRequest]
	OrderDetailService = GenericService[models.OrderDetail, dto.OrderDetailDTO, dto.CreateOrderDetailRequest, dto.UpdateOrderDetailRequest]
)

var customerFields = append(baseFields(func(c *models.Customer) *models.Base { return &c.Base }),
	paging.StringField("Name", func(c *models.Customer) string { return c.Name }),
	paging.StringField("Email", func(c *models.Customer) string { return c.Email }),
	paging.StringField("Phone", func(c *models.Customer) string { return c.Phone }),
	paging.StringField("Address", func(c *models.Customer) string { return c.Address }),
)

func NewCustomerService(repo repositories.Repository[models.Customer], log *zap.Logger) *CustomerService {
	return &CustomerService{
		Resource: "Customer",
		Repo:     repo,
		Mapper: Mapper[models.Customer, dto.CustomerDTO, dto.CreateCustomerRequest, dto.UpdateCustomerRequest]{
			ToDTO:      dto.CustomerToDTO,
			FromCreate: dto.CustomerFromCreate,
			FromUpdate: dto.CustomerFromUpdate,
		},
		Fields: customerFields,
		Log:    log,
	}
}

// Orders carry no text columns, so searching them matches nothing.
var orderFields = append(baseFields(func(o *models.Order) *models.Base { return &o.Base }),
	paging.TimeField("OrderDate", func(o *models.Order) time.Time { return o.OrderDate }),
	paging.UUIDField("CustomerId", func(o *models.Order) uuid.UUID { return o.CustomerID }),
	paging.OrderedField("TotalAmount", func(o *models.Order) float64 { return o.TotalAmount }),
)

func NewOrderService(repo repositories.Repository[models.Order], log *zap.Logger) *OrderService {
	return &OrderService{
		Resource: "Order",
		Repo:     repo,
		Mapper: Mapper[models.Order, dto.OrderDTO, dto.CreateOrderRequest, dto.UpdateOrderRequest]{
			ToDTO:      dto.OrderToDTO,
			FromCreate: dto.OrderFromCreate,
			FromUpdate: dto.OrderFromUpdate,
		},
		Fields: orderFields,
		Log:    log,
	}
}

var orderDetailFields = append(baseFields(func(d *models.OrderDetail) *models.Base { return &d.Base }),
	paging.UUIDField("OrderId", func(d *models.OrderDetail) uuid.UUID { return d.OrderID }),
	paging.UUIDField("ProductId", func(d *models.OrderDetail) uuid.UUID { return d.ProductID }),
	paging.OrderedField("Quantity", func(d *models.OrderDetail) int { return d.Quantity }),
	paging.OrderedField("UnitPrice", func(d *models.OrderDetail) float64 { return d.UnitPrice }),
)

func NewOrderDetailService(repo repositories.Repository[models.OrderDetail], log *zap.Logger) *OrderDetailService {
	return &OrderDetailService{
		Resource: "OrderDetail",
		Repo:     repo,
		Mapper: Mapper[models.OrderDetail, dto.OrderDetailDTO, dto.CreateOrderDetailRequest, dto.UpdateOrderDetailRequest]{
			ToDTO:      dto.OrderDetailToDTO,
			FromCreate: dto.OrderDetailFromCreate,
			FromUpdate: dto.OrderDetailFromUpdate,
		},
		Fields: orderDetailFields,
		Log:    log,
	}
}
