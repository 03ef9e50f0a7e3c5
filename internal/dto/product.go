package dto

import (
	"time"

	"backoffice/internal/domain/models"

	"github.com/google/uuid"
)

type ProductDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CategoryID  uuid.UUID `json:"categoryId"`
	SupplierID  uuid.UUID `json:"supplierId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateProductRequest struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	Price       float64   `json:"price" binding:"gte=0"`
	CategoryID  uuid.UUID `json:"categoryId" binding:"required"`
	SupplierID  uuid.UUID `json:"supplierId" binding:"required"`
}

type UpdateProductRequest struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Price       float64   `json:"price" binding:"gte=0"`
	CategoryID  uuid.UUID `json:"categoryId" binding:"required"`
	SupplierID  uuid.UUID `json:"supplierId" binding:"required"`
}

func ProductToDTO(m models.Product) ProductDTO {
	return ProductDTO{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		CategoryID:  m.CategoryID,
		SupplierID:  m.SupplierID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ProductFromCreate(r CreateProductRequest) models.Product {
	return models.Product{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		CategoryID:  r.CategoryID,
		SupplierID:  r.SupplierID,
	}
}

func ProductFromUpdate(r UpdateProductRequest) models.Product {
	return models.Product{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		CategoryID:  r.CategoryID,
		SupplierID:  r.SupplierID,
	}
}
