package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository is the uniform CRUD contract every entity store satisfies.
type Repository[T any] interface {
	GetAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id uuid.UUID) (T, error)
	Create(ctx context.Context, entity T) (T, error)
	Update(ctx context.Context, id uuid.UUID, entity T) (T, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// Table describes how an entity is laid out in SQL. Columns lists every
// mapped column except id; only these are ever read or written.
type Table struct {
	Name     string
	Resource string
	Columns  []string
}

func (t Table) selectList() string {
	return "id, " + strings.Join(t.Columns, ", ")
}

func (t Table) notFound(id uuid.UUID) error {
	return domain.NotFoundError{Resource: t.Resource, ID: id.String()}
}

var nowUTC = func() time.Time { return time.Now().UTC() }

// stampCreate assigns an id when missing and stamps both timestamps.
func stampCreate[T any, P models.EntityPtr[T]](e P, now time.Time) {
	if e.GetID() == uuid.Nil {
		e.SetID(uuid.New())
	}
	if c, ok := any(e).(models.CreatedStamper); ok {
		c.SetCreatedAt(now)
	}
	if u, ok := any(e).(models.UpdatedStamper); ok {
		u.SetUpdatedAt(now)
	}
}

// stampUpdate pins the id, carries CreatedAt over from the stored row and
// stamps UpdatedAt.
func stampUpdate[T any, P models.EntityPtr[T]](e P, id uuid.UUID, existing P, now time.Time) {
	e.SetID(id)
	if c, ok := any(e).(models.CreatedStamper); ok {
		if old, ok := any(existing).(models.CreatedStamper); ok {
			c.SetCreatedAt(old.GetCreatedAt())
		}
	}
	if u, ok := any(e).(models.UpdatedStamper); ok {
		u.SetUpdatedAt(now)
	}
}

// SQLRepository implements Repository over any sqlx-backed database.
type SQLRepository[T any, P models.EntityPtr[T]] struct {
	DB    *sqlx.DB
	Table Table
}

func NewSQLRepository[T any, P models.EntityPtr[T]](db *sqlx.DB, table Table) *SQLRepository[T, P] {
	return &SQLRepository[T, P]{DB: db, Table: table}
}

func (r *SQLRepository[T, P]) GetAll(ctx context.Context) ([]T, error) {
	rows := []T{}
	q := fmt.Sprintf("SELECT %s FROM %s", r.Table.selectList(), r.Table.Name)
	if err := r.DB.SelectContext(ctx, &rows, q); err != nil {
		return nil, fmt.Errorf("list %s: %w", r.Table.Name, err)
	}
	return rows, nil
}

func (r *SQLRepository[T, P]) GetByID(ctx context.Context, id uuid.UUID) (T, error) {
	var out T
	q := r.DB.Rebind(fmt.Sprintf("SELECT %s FROM %s WHERE id = ?", r.Table.selectList(), r.Table.Name))
	if err := r.DB.GetContext(ctx, &out, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return out, r.Table.notFound(id)
		}
		return out, fmt.Errorf("get %s: %w", r.Table.Name, err)
	}
	return out, nil
}

func (r *SQLRepository[T, P]) Create(ctx context.Context, entity T) (T, error) {
	stampCreate[T, P](P(&entity), nowUTC())

	cols := append([]string{"id"}, r.Table.Columns...)
	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (:%s)",
		r.Table.Name, strings.Join(cols, ", "), strings.Join(cols, ", :"))
	if _, err := r.DB.NamedExecContext(ctx, q, P(&entity)); err != nil {
		return entity, fmt.Errorf("insert %s: %w", r.Table.Name, err)
	}
	return entity, nil
}

// Update replaces every mapped column of the row. Fields left at their zero
// value on entity are written as zero values.
func (r *SQLRepository[T, P]) Update(ctx context.Context, id uuid.UUID, entity T) (T, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return entity, err
	}
	stampUpdate[T, P](P(&entity), id, P(&existing), nowUTC())

	sets := make([]string, 0, len(r.Table.Columns))
	for _, c := range r.Table.Columns {
		sets = append(sets, c+" = :"+c)
	}
	q := fmt.Sprintf("UPDATE %s SET %s WHERE id = :id", r.Table.Name, strings.Join(sets, ", "))
	if _, err := r.DB.NamedExecContext(ctx, q, P(&entity)); err != nil {
		return entity, fmt.Errorf("update %s: %w", r.Table.Name, err)
	}
	return entity, nil
}

func (r *SQLRepository[T, P]) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	q := r.DB.Rebind(fmt.Sprintf("DELETE FROM %s WHERE id = ?", r.Table.Name))
	res, err := r.DB.ExecContext(ctx, q, id)
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", r.Table.Name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", r.Table.Name, err)
	}
	return n > 0, nil
}

func (r *SQLRepository[T, P]) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var n int
	q := r.DB.Rebind(fmt.Sprintf("SELECT COUNT(1) FROM %s WHERE id = ?", r.Table.Name))
	if err := r.DB.GetContext(ctx, &n, q, id); err != nil {
		return false, fmt.Errorf("exists %s: %w", r.Table.Name, err)
	}
	return n > 0, nil
}
