package models

import (
	"time"

	"github.com/google/uuid"
)

// Entity is implemented (on the pointer) by every persisted record.
type Entity interface {
	GetID() uuid.UUID
	SetID(uuid.UUID)
}

// EntityPtr constrains P to be *T implementing Entity, so generic code can
// hold values of T while still calling the pointer methods.
type EntityPtr[T any] interface {
	*T
	Entity
}

// CreatedStamper is implemented by entities with a creation timestamp.
type CreatedStamper interface {
	GetCreatedAt() time.Time
	SetCreatedAt(time.Time)
}

// UpdatedStamper is implemented by entities with a last-modified timestamp.
type UpdatedStamper interface {
	SetUpdatedAt(time.Time)
}

// Base holds the id and timestamps shared by most tables.
type Base struct {
	ID        uuid.UUID `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

func (b *Base) GetID() uuid.UUID         { return b.ID }
func (b *Base) SetID(id uuid.UUID)       { b.ID = id }
func (b *Base) GetCreatedAt() time.Time  { return b.CreatedAt }
func (b *Base) SetCreatedAt(t time.Time) { b.CreatedAt = t }
func (b *Base) SetUpdatedAt(t time.Time) { b.UpdatedAt = t }
