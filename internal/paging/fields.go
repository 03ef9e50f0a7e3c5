// Package paging filters, sorts and slices in-memory entity collections.
//
// Searchable and sortable columns are declared per entity as a Fields table
// instead of being discovered at runtime, so a client can only search or sort
// on what the table lists.
package paging

import (
	"cmp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Field describes one searchable and/or sortable attribute of T.
// Text is nil for non-text fields; Compare is nil for fields that cannot be sorted.
type Field[T any] struct {
	Name    string
	Text    func(*T) string
	Compare func(a, b *T) int
}

type Fields[T any] []Field[T]

// Lookup finds a field by name ignoring case.
func (fs Fields[T]) Lookup(name string) (Field[T], bool) {
	name = strings.TrimSpace(name)
	for _, f := range fs {
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	return Field[T]{}, false
}

// Texts returns the fields that take part in free-text search.
func (fs Fields[T]) Texts() Fields[T] {
	out := make(Fields[T], 0, len(fs))
	for _, f := range fs {
		if f.Text != nil {
			out = append(out, f)
		}
	}
	return out
}

func StringField[T any](name string, get func(*T) string) Field[T] {
	return Field[T]{
		Name: name,
		Text: get,
		Compare: func(a, b *T) int {
			return strings.Compare(get(a), get(b))
		},
	}
}

func OrderedField[T any, V cmp.Ordered](name string, get func(*T) V) Field[T] {
	return Field[T]{
		Name: name,
		Compare: func(a, b *T) int {
			return cmp.Compare(get(a), get(b))
		},
	}
}

func TimeField[T any](name string, get func(*T) time.Time) Field[T] {
	return Field[T]{
		Name: name,
		Compare: func(a, b *T) int {
			return get(a).Compare(get(b))
		},
	}
}

// UUIDField orders ids by their canonical string form.
func UUIDField[T any](name string, get func(*T) uuid.UUID) Field[T] {
	return Field[T]{
		Name: name,
		Compare: func(a, b *T) int {
			return strings.Compare(get(a).String(), get(b).String())
		},
	}
}
