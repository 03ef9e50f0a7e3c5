package repositories

import (
	"context"
	"slices"
	"sync"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"

	"github.com/google/uuid"
)

// MemoryRepository keeps entities in process memory. GetAll returns rows in
// insertion order.
type MemoryRepository[T any, P models.EntityPtr[T]] struct {
	resource string

	mu    sync.RWMutex
	rows  map[uuid.UUID]T
	order []uuid.UUID
}

func NewMemoryRepository[T any, P models.EntityPtr[T]](resource string) *MemoryRepository[T, P] {
	return &MemoryRepository[T, P]{
		resource: resource,
		rows:     make(map[uuid.UUID]T),
	}
}

func (r *MemoryRepository[T, P]) GetAll(_ context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.rows[id])
	}
	return out, nil
}

func (r *MemoryRepository[T, P]) GetByID(_ context.Context, id uuid.UUID) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.rows[id]
	if !ok {
		return e, domain.NotFoundError{Resource: r.resource, ID: id.String()}
	}
	return e, nil
}

func (r *MemoryRepository[T, P]) Create(_ context.Context, entity T) (T, error) {
	stampCreate[T, P](P(&entity), nowUTC())

	r.mu.Lock()
	defer r.mu.Unlock()

	id := P(&entity).GetID()
	if _, dup := r.rows[id]; dup {
		return entity, domain.ConflictError{Resource: r.resource, Msg: "duplicate id " + id.String()}
	}
	r.rows[id] = entity
	r.order = append(r.order, id)
	return entity, nil
}

func (r *MemoryRepository[T, P]) Update(_ context.Context, id uuid.UUID, entity T) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.rows[id]
	if !ok {
		return entity, domain.NotFoundError{Resource: r.resource, ID: id.String()}
	}
	stampUpdate[T, P](P(&entity), id, P(&existing), nowUTC())
	r.rows[id] = entity
	return entity, nil
}

func (r *MemoryRepository[T, P]) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return false, nil
	}
	delete(r.rows, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}

func (r *MemoryRepository[T, P]) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.rows[id]
	return ok, nil
}

// MemoryInventoryHistory is the in-memory counterpart of InventoryHistoryRepository.
type MemoryInventoryHistory struct {
	*MemoryRepository[models.InventoryHistory, *models.InventoryHistory]
}

func NewMemoryInventoryHistory() *MemoryInventoryHistory {
	return &MemoryInventoryHistory{
		MemoryRepository: NewMemoryRepository[models.InventoryHistory]("InventoryHistory"),
	}
}

func (r *MemoryInventoryHistory) GetAll(ctx context.Context) ([]models.InventoryHistory, error) {
	return r.where(ctx, func(models.InventoryHistory) bool { return true })
}

func (r *MemoryInventoryHistory) GetByProductID(ctx context.Context, productID uuid.UUID) ([]models.InventoryHistory, error) {
	return r.where(ctx, func(h models.InventoryHistory) bool { return h.ProductID == productID })
}

func (r *MemoryInventoryHistory) GetByDateRange(ctx context.Context, start, end time.Time) ([]models.InventoryHistory, error) {
	return r.where(ctx, func(h models.InventoryHistory) bool {
		return !h.ChangedAt.Before(start) && !h.ChangedAt.After(end)
	})
}

func (r *MemoryInventoryHistory) where(ctx context.Context, keep func(models.InventoryHistory) bool) ([]models.InventoryHistory, error) {
	all, err := r.MemoryRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := []models.InventoryHistory{}
	for _, h := range all {
		if keep(h) {
			out = append(out, h)
		}
	}
	slices.SortStableFunc(out, func(a, b models.InventoryHistory) int {
		return b.ChangedAt.Compare(a.ChangedAt)
	})
	return out, nil
}
