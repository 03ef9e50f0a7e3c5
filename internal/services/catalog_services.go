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
	CategoryService = GenericService[models.Category, dto.CategoryDTO, dto.CreateCategoryRequest, dto.UpdateCategoryRequest]
	SupplierService = GenericService[models.Supplier, dto.SupplierDTO, dto.CreateSupplierRequest, dto.UpdateSupplierRequest]
	ProductService  = GenericService[models.Product, dto.ProductDTO, dto.CreateProductRequest, dto.UpdateProductRequest]
)

// baseFields lists the id and timestamp columns shared by entities embedding models.Base.
func baseFields[T any](base func(*T) *models.Base) paging.Fields[T] {
	return paging.Fields[T]{
		paging.UUIDField("Id", func(t *T) uuid.UUID { return base(t).ID }),
		paging.TimeField("CreatedAt", func(t *T) time.Time { return base(t).CreatedAt }),
		paging.TimeField("UpdatedAt", func(t *T) time.Time { return base(t).UpdatedAt }),
	}
}

var categoryFields = append(baseFields(func(c *models.Category) *models.Base { return &c.Base }),
	paging.StringField("Name", func(c *models.Category) string { return c.Name }),
)

func NewCategoryService(repo repositories.Repository[models.Category], log *zap.Logger) *CategoryService {
	return &CategoryService{
		Resource: "Category",
		Repo:     repo,
		Mapper: Mapper[models.Category, dto.CategoryDTO, dto.CreateCategoryRequest, dto.UpdateCategoryRequest]{
			ToDTO:      dto.CategoryToDTO,
			FromCreate: dto.CategoryFromCreate,
			FromUpdate: dto.CategoryFromUpdate,
		},
		Fields: categoryFields,
		Log:    log,
	}
}

var supplierFields = append(baseFields(func(s *models.Supplier) *models.Base { return &s.Base }),
	paging.StringField("SupplierName", func(s *models.Supplier) string { return s.SupplierName }),
	paging.StringField("ContactPerson", func(s *models.Supplier) string { return s.ContactPerson }),
	paging.StringField("ContactPhone", func(s *models.Supplier) string { return s.ContactPhone }),
)

func NewSupplierService(repo repositories.Repository[models.Supplier], log *zap.Logger) *SupplierService {
	return &SupplierService{
		Resource: "Supplier",
		Repo:     repo,
		Mapper: Mapper[models.Supplier, dto.SupplierDTO, dto.CreateSupplierRequest, dto.UpdateSupplierRequest]{
			ToDTO:      dto.SupplierToDTO,
			FromCreate: dto.SupplierFromCreate,
			FromUpdate: dto.SupplierFromUpdate,
		},
		Fields: supplierFields,
		Log:    log,
	}
}

var productFields = append(baseFields(func(p *models.Product) *models.Base { return &p.Base }),
	paging.StringField("Name", func(p *models.Product) string { return p.Name }),
	paging.StringField("Description", func(p *models.Product) string { return p.Description }),
	paging.OrderedField("Price", func(p *models.Product) float64 { return p.Price }),
	paging.UUIDField("CategoryId", func(p *models.Product) uuid.UUID { return p.CategoryID }),
	paging.UUIDField("SupplierId", func(p *models.Product) uuid.UUID { return p.SupplierID }),
)

func NewProductService(repo repositories.Repository[models.Product], log *zap.Logger) *ProductService {
	return &ProductService{
		Resource: "Product",
		Repo:     repo,
		Mapper: Mapper[models.Product, dto.ProductDTO, dto.CreateProductRequest, dto.UpdateProductRequest]{
			ToDTO:      dto.ProductToDTO,
			FromCreate: dto.ProductFromCreate,
			FromUpdate: dto.ProductFromUpdate,
		},
		Fields: productFields,
		Log:    log,
	}
}
