package dto

import (
	"time"

	"backoffice/internal/domain/models"

	"github.com/google/uuid"
)

type CustomerDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address" binding:"required"`
}

type UpdateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address" binding:"required"`
}

func CustomerToDTO(m models.Customer) CustomerDTO {
	return CustomerDTO{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Address:   m.Address,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func CustomerFromCreate(r CreateCustomerRequest) models.Customer {
	return models.Customer{Name: r.Name, Email: r.Email, Phone: r.Phone, Address: r.Address}
}

func CustomerFromUpdate(r UpdateCustomerRequest) models.Customer {
	return models.Customer{Name: r.Name, Email: r.Email, Phone: r.Phone, Address: r.Address}
}
