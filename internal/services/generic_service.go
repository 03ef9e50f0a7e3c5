package services

import (
	"context"
	"fmt"

	"backoffice/internal/domain"
	"backoffice/internal/paging"
	"backoffice/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Mapper converts between an entity E, its DTO D and its create/update
// request types C and U.
type Mapper[E, D, C, U any] struct {
	ToDTO      func(E) D
	FromCreate func(C) E
	FromUpdate func(U) E
}

// GenericService exposes CRUD and paged listing of one entity in DTO form.
// Fields is the allow-list used for search and sort.
type GenericService[E, D, C, U any] struct {
	Resource string
	Repo     repositories.Repository[E]
	Mapper   Mapper[E, D, C, U]
	Fields   paging.Fields[E]
	Log      *zap.Logger
}

func (s *GenericService[E, D, C, U]) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}

func (s *GenericService[E, D, C, U]) notFound(id uuid.UUID) error {
	return domain.NotFoundError{Resource: s.Resource, ID: id.String()}
}

func (s *GenericService[E, D, C, U]) mapAll(rows []E) []D {
	out := make([]D, 0, len(rows))
	for _, r := range rows {
		out = append(out, s.Mapper.ToDTO(r))
	}
	return out
}

func requireID(id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.ValidationError{Field: "id", Msg: "must not be empty"}
	}
	return nil
}

func (s *GenericService[E, D, C, U]) GetAll(ctx context.Context) ([]D, error) {
	rows, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.mapAll(rows), nil
}

// GetPaged loads the whole collection, then searches, sorts and slices it in
// memory.
func (s *GenericService[E, D, C, U]) GetPaged(ctx context.Context, req domain.PagedRequest) (domain.PagedResponse[D], error) {
	rows, err := s.Repo.GetAll(ctx)
	if err != nil {
		return domain.PagedResponse[D]{}, err
	}
	page, total := paging.Apply(rows, req, s.Fields)
	return domain.NewPagedResponse(s.mapAll(page), total, req.PageNumber(), req.PageSize()), nil
}

func (s *GenericService[E, D, C, U]) GetByID(ctx context.Context, id uuid.UUID) (D, error) {
	var zero D
	if err := requireID(id); err != nil {
		return zero, err
	}
	e, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return zero, s.notFound(id)
		}
		return zero, err
	}
	return s.Mapper.ToDTO(e), nil
}

func (s *GenericService[E, D, C, U]) Create(ctx context.Context, req *C) (D, error) {
	var zero D
	if req == nil {
		return zero, domain.ValidationError{Field: "request", Msg: "must not be empty"}
	}
	e, err := s.Repo.Create(ctx, s.Mapper.FromCreate(*req))
	if err != nil {
		return zero, fmt.Errorf("create %s: %w", s.Resource, err)
	}
	s.logger().Debug("entity created", zap.String("resource", s.Resource))
	return s.Mapper.ToDTO(e), nil
}

// Update replaces the stored entity with the mapped request. Existence is
// checked before any write.
func (s *GenericService[E, D, C, U]) Update(ctx context.Context, id uuid.UUID, req *U) (D, error) {
	var zero D
	if err := requireID(id); err != nil {
		return zero, err
	}
	if req == nil {
		return zero, domain.ValidationError{Field: "request", Msg: "must not be empty"}
	}
	ok, err := s.Repo.Exists(ctx, id)
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, s.notFound(id)
	}
	e, err := s.Repo.Update(ctx, id, s.Mapper.FromUpdate(*req))
	if err != nil {
		if domain.IsNotFound(err) {
			return zero, s.notFound(id)
		}
		return zero, fmt.Errorf("update %s: %w", s.Resource, err)
	}
	s.logger().Debug("entity updated", zap.String("resource", s.Resource), zap.Stringer("id", id))
	return s.Mapper.ToDTO(e), nil
}

func (s *GenericService[E, D, C, U]) Delete(ctx context.Context, id uuid.UUID) error {
	if err := requireID(id); err != nil {
		return err
	}
	ok, err := s.Repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return s.notFound(id)
	}
	if _, err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete %s: %w", s.Resource, err)
	}
	s.logger().Debug("entity deleted", zap.String("resource", s.Resource), zap.Stringer("id", id))
	return nil
}

func (s *GenericService[E, D, C, U]) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := requireID(id); err != nil {
		return false, err
	}
	return s.Repo.Exists(ctx, id)
}
