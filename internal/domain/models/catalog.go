package models

import "github.com/google/uuid"

type Category struct {
	Base
	Name string `db:"name" json:"name"`
}

type Supplier struct {
	Base
	SupplierName  string `db:"supplier_name" json:"supplierName"`
	ContactPerson string `db:"contact_person" json:"contactPerson"`
	ContactPhone  string `db:"contact_phone" json:"contactPhone"`
}

type Product struct {
	Base
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Price       float64   `db:"price" json:"price"`
	CategoryID  uuid.UUID `db:"category_id" json:"categoryId"`
	SupplierID  uuid.UUID `db:"supplier_id" json:"supplierId"`
}
