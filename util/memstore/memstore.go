// Package memstore keeps every collection in process memory. It implements the
// repository interfaces for development runs and tests.
package memstore

import (
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store bundles one table per collection.
type Store struct {
	Users     *UserRepo
	Sessions  *SessionRepo
	Authors   *AuthorRepo
	Genres    *GenreRepo
	Books     *BookRepo
	Instances *InstanceRepo
}

func New() *Store {
	return &Store{
		Users:     &UserRepo{t: newTable[userRow]()},
		Sessions:  &SessionRepo{rows: map[string]sessionRow{}},
		Authors:   &AuthorRepo{t: newTable[authorRow]()},
		Genres:    &GenreRepo{t: newTable[genreRow]()},
		Books:     &BookRepo{t: newTable[bookRow]()},
		Instances: &InstanceRepo{t: newTable[instanceRow]()},
	}
}

// table is an insertion-ordered map guarded by a mutex.
type table[T any] struct {
	mu    sync.RWMutex
	rows  map[primitive.ObjectID]T
	order []primitive.ObjectID
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: map[primitive.ObjectID]T{}}
}

func (t *table[T]) get(id primitive.ObjectID) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.rows[id]
	return v, ok
}

func (t *table[T]) put(id primitive.ObjectID, v T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		t.order = append(t.order, id)
	}
	t.rows[id] = v
}

// replace overwrites an existing row and reports whether it was there.
func (t *table[T]) replace(id primitive.ObjectID, v T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return false
	}
	t.rows[id] = v
	return true
}

func (t *table[T]) remove(match func(T) bool) int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	var n int64
	kept := t.order[:0]
	for _, id := range t.order {
		if match(t.rows[id]) {
			delete(t.rows, id)
			n++
			continue
		}
		kept = append(kept, id)
	}
	t.order = kept
	return n
}

func (t *table[T]) filter(match func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var out []T
	for _, id := range t.order {
		if v := t.rows[id]; match == nil || match(v) {
			out = append(out, v)
		}
	}
	return out
}

func (t *table[T]) count(match func(T) bool) int64 {
	return int64(len(t.filter(match)))
}

func all[T any](T) bool { return true }

func sortBy[T any](rows []T, less func(a, b T) bool) []T {
	sort.SliceStable(rows, func(i, j int) bool { return less(rows[i], rows[j]) })
	return rows
}

func idSet(ids []primitive.ObjectID) map[primitive.ObjectID]bool {
	m := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}
