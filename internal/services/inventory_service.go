package services

import (
	"context"
	"fmt"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/dto"
	"backoffice/internal/paging"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HistoryStore is the stock movement log used by InventoryService and reports.
type HistoryStore interface {
	GetAll(ctx context.Context) ([]models.InventoryHistory, error)
	GetByProductID(ctx context.Context, productID uuid.UUID) ([]models.InventoryHistory, error)
	GetByDateRange(ctx context.Context, start, end time.Time) ([]models.InventoryHistory, error)
	Create(ctx context.Context, h models.InventoryHistory) (models.InventoryHistory, error)
}

var inventoryFields = paging.Fields[models.Inventory]{
	paging.UUIDField("Id", func(i *models.Inventory) uuid.UUID { return i.ID }),
	paging.UUIDField("ProductId", func(i *models.Inventory) uuid.UUID { return i.ProductID }),
	paging.OrderedField("StockQuantity", func(i *models.Inventory) int { return i.StockQuantity }),
	paging.TimeField("CreatedAt", func(i *models.Inventory) time.Time { return i.CreatedAt }),
	paging.TimeField("LastStockUpdate", func(i *models.Inventory) time.Time { return i.LastStockUpdate }),
}

// InventoryService adds stock adjustment and history queries to the generic
// inventory CRUD.
type InventoryService struct {
	*GenericService[models.Inventory, dto.InventoryDTO, dto.CreateInventoryRequest, dto.UpdateInventoryRequest]
	History HistoryStore
}

func NewInventoryService(repo repositories.Repository[models.Inventory], history HistoryStore, log *zap.Logger) *InventoryService {
	return &InventoryService{
		GenericService: &GenericService[models.Inventory, dto.InventoryDTO, dto.CreateInventoryRequest, dto.UpdateInventoryRequest]{
			Resource: "Inventory",
			Repo:     repo,
			Mapper: Mapper[models.Inventory, dto.InventoryDTO, dto.CreateInventoryRequest, dto.UpdateInventoryRequest]{
				ToDTO:      dto.InventoryToDTO,
				FromCreate: dto.InventoryFromCreate,
				FromUpdate: dto.InventoryFromUpdate,
			},
			Fields: inventoryFields,
			Log:    log,
		},
		History: history,
	}
}

// AdjustStock sets the stock of one inventory row and appends a history entry
// describing the movement. The two writes are sequential and not atomic.
func (s *InventoryService) AdjustStock(ctx context.Context, requestID string, id uuid.UUID, newQuantity int, notes string) (dto.InventoryDTO, error) {
	if err := requireID(id); err != nil {
		return dto.InventoryDTO{}, err
	}
	if newQuantity < 0 {
		return dto.InventoryDTO{}, domain.ValidationError{Field: "newQuantity", Msg: "must not be negative"}
	}

	inv, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return dto.InventoryDTO{}, s.notFound(id)
		}
		return dto.InventoryDTO{}, err
	}

	previous := inv.StockQuantity
	inv.StockQuantity = newQuantity
	updated, err := s.Repo.Update(ctx, id, inv)
	if err != nil {
		return dto.InventoryDTO{}, fmt.Errorf("adjust inventory: %w", err)
	}

	delta := newQuantity - previous
	_, err = s.History.Create(ctx, models.InventoryHistory{
		InventoryID:      updated.ID,
		ProductID:        updated.ProductID,
		PreviousQuantity: previous,
		NewQuantity:      newQuantity,
		QuantityChange:   delta,
		ChangeType:       models.ChangeTypeFor(delta),
		Notes:            utils.NormalizeSpace(notes),
		ChangedAt:        updated.LastStockUpdate,
	})
	if err != nil {
		return dto.InventoryDTO{}, fmt.Errorf("record inventory history: %w", err)
	}

	utils.LogEvent(s.logger(), requestID, "inventory", "adjust", "stock adjusted",
		zap.Stringer("inventory_id", id), zap.Int("previous", previous), zap.Int("new", newQuantity))
	return dto.InventoryToDTO(updated), nil
}

func (s *InventoryService) ListHistory(ctx context.Context) ([]dto.InventoryHistoryDTO, error) {
	return s.historyDTOs(s.History.GetAll(ctx))
}

func (s *InventoryService) HistoryByProduct(ctx context.Context, productID uuid.UUID) ([]dto.InventoryHistoryDTO, error) {
	if productID == uuid.Nil {
		return nil, domain.ValidationError{Field: "productId", Msg: "must not be empty"}
	}
	return s.historyDTOs(s.History.GetByProductID(ctx, productID))
}

func (s *InventoryService) HistoryBetween(ctx context.Context, start, end time.Time) ([]dto.InventoryHistoryDTO, error) {
	if end.Before(start) {
		return nil, domain.ValidationError{Field: "end", Msg: "must not be before start"}
	}
	return s.historyDTOs(s.History.GetByDateRange(ctx, start, end))
}

func (s *InventoryService) historyDTOs(rows []models.InventoryHistory, err error) ([]dto.InventoryHistoryDTO, error) {
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryHistoryDTO, 0, len(rows))
	for _, h := range rows {
		out = append(out, dto.InventoryHistoryToDTO(h))
	}
	return out, nil
}
