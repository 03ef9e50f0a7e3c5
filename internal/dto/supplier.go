package dto

import (
	"time"

	"backoffice/internal/domain/models"

	"github.com/google/uuid"
)

type SupplierDTO struct {
	ID            uuid.UUID `json:"id"`
	SupplierName  string    `json:"supplierName"`
	ContactPerson string    `json:"contactPerson"`
	ContactPhone  string    `json:"contactPhone"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type CreateSupplierRequest struct {
	SupplierName  string `json:"supplierName" binding:"required"`
	ContactPerson string `json:"contactPerson" binding:"required"`
	ContactPhone  string `json:"contactPhone" binding:"required"`
}

type UpdateSupplierRequest struct {
	SupplierName  string `json:"supplierName" binding:"required"`
	ContactPerson string `json:"contactPerson" binding:"required"`
	ContactPhone  string `json:"contactPhone" binding:"required"`
}

func SupplierToDTO(m models.Supplier) SupplierDTO {
	return SupplierDTO{
		ID:            m.ID,
		SupplierName:  m.SupplierName,
		ContactPerson: m.ContactPerson,
		ContactPhone:  m.ContactPhone,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func SupplierFromCreate(r CreateSupplierRequest) models.Supplier {
	return models.Supplier{
		SupplierName:  r.SupplierName,
		ContactPerson: r.ContactPerson,
		ContactPhone:  r.ContactPhone,
	}
}

func SupplierFromUpdate(r UpdateSupplierRequest) models.Supplier {
	return models.Supplier{
		SupplierName:  r.SupplierName,
		ContactPerson: r.ContactPerson,
		ContactPhone:  r.ContactPhone,
	}
}
