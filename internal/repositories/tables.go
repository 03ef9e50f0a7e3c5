package repositories

import (
	"backoffice/internal/domain/models"

	"github.com/jmoiron/sqlx"
)

var (
	CategoryTable = Table{
		Name:     "categories",
		Resource: "Category",
		Columns:  []string{"name", "created_at", "updated_at"},
	}
	SupplierTable = Table{
		Name:     "suppliers",
		Resource: "Supplier",
		Columns:  []string{"supplier_name", "contact_person", "contact_phone", "created_at", "updated_at"},
	}
	ProductTable = Table{
		Name:     "products",
		Resource: "Product",
		Columns:  []string{"name", "description", "price", "category_id", "supplier_id", "created_at", "updated_at"},
	}
	CustomerTable = Table{
		Name:     "customers",
		Resource: "Customer",
		Columns:  []string{"name", "email", "phone", "address", "created_at", "updated_at"},
	}
	OrderTable = Table{
		Name:     "orders",
		Resource: "Order",
		Columns:  []string{"order_date", "customer_id", "total_amount", "created_at", "updated_at"},
	}
	OrderDetailTable = Table{
		Name:     "order_details",
		Resource: "OrderDetail",
		Columns:  []string{"order_id", "product_id", "quantity", "unit_price", "created_at", "updated_at"},
	}
	InventoryTable = Table{
		Name:     "inventories",
		Resource: "Inventory",
		Columns:  []string{"product_id", "stock_quantity", "created_at", "last_stock_update"},
	}
	InventoryHistoryTable = Table{
		Name:     "inventory_histories",
		Resource: "InventoryHistory",
		Columns: []string{
			"inventory_id", "product_id", "previous_quantity", "new_quantity",
			"quantity_change", "change_type", "notes", "changed_at",
		},
	}
)

// Stores groups the SQL repositories of every catalog entity.
type Stores struct {
	Categories   Repository[models.Category]
	Suppliers    Repository[models.Supplier]
	Products     Repository[models.Product]
	Customers    Repository[models.Customer]
	Orders       Repository[models.Order]
	OrderDetails Repository[models.OrderDetail]
	Inventories  Repository[models.Inventory]
	History      *InventoryHistoryRepository
	Users        *UserRepository
}

func NewStores(db *sqlx.DB) Stores {
	return Stores{
		Categories:   NewSQLRepository[models.Category](db, CategoryTable),
		Suppliers:    NewSQLRepository[models.Supplier](db, SupplierTable),
		Products:     NewSQLRepository[models.Product](db, ProductTable),
		Customers:    NewSQLRepository[models.Customer](db, CustomerTable),
		Orders:       NewSQLRepository[models.Order](db, OrderTable),
		OrderDetails: NewSQLRepository[models.OrderDetail](db, OrderDetailTable),
		Inventories:  NewSQLRepository[models.Inventory](db, InventoryTable),
		History:      NewInventoryHistoryRepository(db),
		Users:        NewUserRepository(db),
	}
}
