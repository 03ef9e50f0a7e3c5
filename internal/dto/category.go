package dto

import (
	"time"

	"backoffice/internal/domain/models"

	"github.com/google/uuid"
)

type CategoryDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type UpdateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

func CategoryToDTO(m models.Category) CategoryDTO {
	return CategoryDTO{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func CategoryFromCreate(r CreateCategoryRequest) models.Category {
	return models.Category{Name: r.Name}
}

func CategoryFromUpdate(r UpdateCategoryRequest) models.Category {
	return models.Category{Name: r.Name}
}
