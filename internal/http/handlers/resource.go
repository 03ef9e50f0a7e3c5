package handlers

import (
	"context"
	"net/http"

	"backoffice/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CRUDService is the part of services.GenericService a resource handler drives.
type CRUDService[D, C, U any] interface {
	GetAll(ctx context.Context) ([]D, error)
	GetPaged(ctx context.Context, req domain.PagedRequest) (domain.PagedResponse[D], error)
	GetByID(ctx context.Context, id uuid.UUID) (D, error)
	Create(ctx context.Context, req *C) (D, error)
	Update(ctx context.Context, id uuid.UUID, req *U) (D, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ResourceHandler serves the standard CRUD and paged endpoints for one entity.
type ResourceHandler[D, C, U any] struct {
	Name    string
	Service CRUDService[D, C, U]
}

func NewResourceHandler[D, C, U any](name string, svc CRUDService[D, C, U]) *ResourceHandler[D, C, U] {
	return &ResourceHandler[D, C, U]{Name: name, Service: svc}
}

// Mount registers the routes on g. Deletes additionally pass through adminOnly.
func (h *ResourceHandler[D, C, U]) Mount(g *gin.RouterGroup, adminOnly gin.HandlerFunc) {
	g.GET("", h.List)
	g.GET("/paged", h.Paged)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", adminOnly, h.Delete)
}

func (h *ResourceHandler[D, C, U]) List(c *gin.Context) {
	items, err := h.Service.GetAll(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusOK, items, "")
}

func (h *ResourceHandler[D, C, U]) Paged(c *gin.Context) {
	req, ok := PagedRequestFromQuery(c)
	if !ok {
		return
	}
	page, err := h.Service.GetPaged(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusOK, page, "")
}

func (h *ResourceHandler[D, C, U]) Get(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	item, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusOK, item, "")
}

func (h *ResourceHandler[D, C, U]) Create(c *gin.Context) {
	var req C
	if !BindJSONOrError(c, &req) {
		return
	}
	item, err := h.Service.Create(c.Request.Context(), &req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusCreated, item, h.Name+" created successfully")
}

func (h *ResourceHandler[D, C, U]) Update(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req U
	if !BindJSONOrError(c, &req) {
		return
	}
	item, err := h.Service.Update(c.Request.Context(), id, &req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusOK, item, h.Name+" updated successfully")
}

func (h *ResourceHandler[D, C, U]) Delete(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	respond[any](c, http.StatusOK, nil, h.Name+" deleted successfully")
}
