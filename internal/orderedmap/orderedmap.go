// Package orderedmap provides a map that remembers insertion order and
// refuses to overwrite an existing key.
package orderedmap

import (
	"iter"

	"github.com/pkg/errors"
)

var ErrDuplicateEntry = errors.New("duplicate entry")

type Map[K comparable, V any] struct {
	entries []K
	keys    map[K]V
}

func New[K comparable, V any](capacity int) *Map[K, V] {
	return &Map[K, V]{
		entries: make([]K, 0, capacity),
		keys:    make(map[K]V, capacity),
	}
}

// Set adds key. It returns ErrDuplicateEntry if the key is already present,
// leaving the stored value untouched.
func (m *Map[K, V]) Set(key K, value V) error {
	if _, exists := m.keys[key]; exists {
		return ErrDuplicateEntry
	}
	m.entries = append(m.entries, key)
	m.keys[key] = value
	return nil
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.keys[key]
	return v, ok
}

func (m *Map[K, V]) Len() int {
	return len(m.entries)
}

func (m *Map[K, V]) Range() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.entries {
			if !yield(k, m.keys[k]) {
				return
			}
		}
	}
}
